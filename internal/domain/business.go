package domain

// Selection is the page-session choice of business and its sentiment model.
// Both fields always come from the same Business option.
type Selection struct {
	BusinessID string `json:"business_id"`
	ModelType  string `json:"model_type"`
}

func DefaultSelection() Selection {
	return Selection{BusinessID: "amazon_business", ModelType: "amazon"}
}

type Business struct {
	ID        string
	ModelType string
	Name      string
	Icon      string
}

func (b Business) Selection() Selection {
	return Selection{BusinessID: b.ID, ModelType: b.ModelType}
}

// Businesses is the fixed set of options offered by the page, in display order.
var Businesses = []Business{
	{ID: "amazon_business", ModelType: "amazon", Name: "Food Restaurant", Icon: "🍽️"},
	{ID: "hotel_business", ModelType: "hotel", Name: "Luxury Hotel", Icon: "🏨"},
	{ID: "coursera_business", ModelType: "coursera", Name: "Online Course Platform", Icon: "🎓"},
}

// LookupOption reports whether (businessID, modelType) is one of the offered pairs.
func LookupOption(businessID, modelType string) (Business, bool) {
	for _, b := range Businesses {
		if b.ID == businessID && b.ModelType == modelType {
			return b, true
		}
	}
	return Business{}, false
}
