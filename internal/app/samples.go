package app

// SampleReviews is the demo corpus per model type.
var SampleReviews = map[string][]string{
	"amazon": {
		"The pasta was absolutely delicious! Highly recommend the carbonara.",
		"Best pizza I've ever had! The crust was perfect and toppings were fresh.",
		"Amazing food and excellent service. Will definitely come back!",
		"The steak was cooked to perfection. Great wine selection too.",
		"Fresh ingredients, great presentation, and friendly staff.",
		"The seafood platter was outstanding. Best restaurant in town!",
		"Food was cold when it arrived. Very disappointing.",
		"Overpriced for the quality. The steak was tough and bland.",
		"Terrible service. Waited 45 minutes for our food.",
		"The pasta was undercooked and sauce was watery.",
		"The chicken was dry and flavorless. Won't be back.",
		"Dirty tables and the food was mediocre at best.",
		"Great food but service was slow. Still enjoyed it overall.",
		"Nice atmosphere but the food was average. Could be better.",
		"Good pizza but the salad was wilted and sad.",
		"Excellent appetizers but the main course was disappointing.",
		"The desserts were to die for! Especially the tiramisu.",
		"Way too salty. Could barely eat my meal.",
		"Love the location but prices are too high.",
		"Delicious food, reasonable prices, and quick service.",
	},
	"hotel": {
		"The room was spotless and very comfortable. Great stay!",
		"Amazing service! Staff went above and beyond.",
		"Beautiful location with stunning views. Highly recommend!",
		"The bed was so comfortable. Best sleep I've had in a hotel.",
		"Clean facilities and friendly staff. Will definitely return!",
		"The pool area is fantastic and well maintained.",
		"The room was dirty and the AC didn't work.",
		"Terrible experience. Room smelled musty and old.",
		"Noisy neighbors kept us up all night. No soundproofing.",
		"The beds were uncomfortable and sheets were scratchy.",
		"Rude staff and unhelpful front desk.",
		"Overpriced for what you get. Very disappointed.",
		"Great location but the room was small and dated.",
		"Friendly staff but facilities need updating.",
		"Clean room but very noisy at night.",
		"Nice pool but the gym equipment is old.",
		"Spacious rooms with modern amenities. Loved it!",
		"Excellent breakfast buffet with lots of variety.",
		"The spa services were incredible. So relaxing!",
		"Perfect location near all attractions. Very convenient.",
	},
	"coursera": {
		"Excellent content! The instructor explains everything clearly.",
		"This course changed my career. Highly recommend!",
		"Well structured and easy to follow. Great for beginners.",
		"The assignments really helped reinforce the concepts.",
		"Amazing instructor! Very knowledgeable and engaging.",
		"Perfect pacing. Not too fast, not too slow.",
		"Practical examples made complex topics simple.",
		"Great value for money. Learned so much!",
		"The course is too long and the videos are boring.",
		"Outdated information. Not relevant anymore.",
		"The instructor speaks too fast and unclear.",
		"Poor quality videos with bad audio.",
		"The assignments are way too difficult for beginners.",
		"Waste of money. Didn't learn anything new.",
		"Good content but videos could be shorter.",
		"Great material but the platform is buggy.",
		"Informative but assignments are too easy.",
		"Solid course but lacks hands-on practice.",
		"The capstone project was challenging but rewarding.",
		"Best online course I've taken. Worth every penny!",
	},
}

var sampleCustomers = []string{
	"John Smith", "Emma Johnson", "Michael Brown", "Sarah Davis", "James Wilson",
	"Emily Taylor", "David Anderson", "Olivia Martinez", "Daniel Thomas", "Sophia Garcia",
	"Robert Rodriguez", "Isabella Lee", "William White", "Mia Harris", "Richard Clark",
	"Ava Lewis", "Joseph Young", "Charlotte Hall", "Thomas Allen", "Amelia King",
}
