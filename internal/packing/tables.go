package packing

// ========== Reference tables ==========
// Tables are built once at package init and only ever read afterwards.
// Generate copies every template it uses before adjusting quantities.

type ruleTable map[string][]Item

// destinationRule keeps destinations in declaration order so the first
// matching key wins.
type destinationRule struct {
	key   string
	items []Item
}

var baseItems = []Item{
	essential("Passport", "documents", 1),
	essential("Wallet", "documents", 1),
	essential("Phone Charger", "electronics", 1),
	essential("Toothbrush", "toiletries", 1),
	essential("Toothpaste", "toiletries", 1),
	essential("Deodorant", "toiletries", 1),
	essential("Hand Sanitizer", "toiletries", 1),
	item("Face Mask", "health", 5),
	essential("Travel Insurance Info", "documents", 1),
	essential("Emergency Contact Info", "documents", 1),
	item("Pain Reliever", "medication", 1),
	item("Band-Aids", "health", 1),
}

var seasonItems = ruleTable{
	"summer": {
		item("T-shirts", "clothing", 5),
		item("Shorts", "clothing", 3),
		item("Sandals", "footwear", 1),
		item("Sunglasses", "accessories", 1),
		essential("Sunscreen", "toiletries", 1),
		item("Hat", "accessories", 1),
		item("Insect Repellent", "toiletries", 1),
		item("Light Pajamas", "clothing", 1),
		item("Swimwear", "clothing", 1),
	},
	"winter": {
		item("Sweaters", "clothing", 3),
		item("Thermal Underwear", "clothing", 2),
		essential("Winter Coat", "clothing", 1),
		item("Gloves", "accessories", 1),
		item("Scarf", "accessories", 1),
		item("Winter Hat", "accessories", 1),
		essential("Boots", "footwear", 1),
		item("Thick Socks", "clothing", 3),
		item("Lip Balm", "toiletries", 1),
		item("Hand Warmers", "accessories", 2),
		item("Warm Pajamas", "clothing", 1),
	},
	"spring": {
		item("Light Sweaters", "clothing", 2),
		item("Long Sleeve Shirts", "clothing", 3),
		item("Light Jacket", "clothing", 1),
		item("Umbrella", "accessories", 1),
		item("Allergy Medicine", "medication", 1),
		item("Rain Jacket", "clothing", 1),
		item("Waterproof Shoes", "footwear", 1),
	},
	"fall": {
		item("Light Sweaters", "clothing", 2),
		item("Long Sleeve Shirts", "clothing", 3),
		item("Medium Jacket", "clothing", 1),
		item("Scarf", "accessories", 1),
		item("Closed Shoes", "footwear", 1),
		item("Light Gloves", "accessories", 1),
		item("Warm Hat", "accessories", 1),
	},
	"rainy": {
		essential("Rain Jacket", "clothing", 1),
		essential("Waterproof Shoes", "footwear", 1),
		essential("Umbrella", "accessories", 1),
		item("Quick-dry Clothing", "clothing", 3),
		item("Waterproof Phone Case", "accessories", 1),
		item("Waterproof Backpack Cover", "accessories", 1),
	},
	"tropical": {
		item("Lightweight Clothing", "clothing", 5),
		essential("Insect Repellent", "toiletries", 1),
		essential("Anti-malarial Medication", "medication", 1).note("If required for destination"),
		essential("High SPF Sunscreen", "toiletries", 1),
		item("Aloe Vera Gel", "toiletries", 1),
		item("Mosquito Net", "accessories", 1).note("If accommodations don't provide"),
	},
}

var tripTypeItems = ruleTable{
	"business": {
		essential("Business Suits", "clothing", 2),
		essential("Dress Shirts", "clothing", 3),
		essential("Dress Shoes", "footwear", 1),
		item("Ties", "accessories", 2),
		essential("Laptop", "electronics", 1),
		item("Business Cards", "documents", 1),
		item("Portfolio/Notebook", "accessories", 1),
		item("Portable Charger", "electronics", 1),
		item("Presentation Materials", "documents", 1).note("If needed"),
	},
	"leisure": {
		item("Casual Clothes", "clothing", 4),
		essential("Comfortable Shoes", "footwear", 1),
		item("Book/E-Reader", "entertainment", 1),
		item("Camera", "electronics", 1),
		item("Day Bag/Backpack", "accessories", 1),
		item("Snacks", "food", 1),
		item("Reusable Water Bottle", "accessories", 1),
	},
	"beach": {
		essential("Swimsuits", "clothing", 2),
		item("Beach Towel", "accessories", 1),
		item("Flip Flops", "footwear", 1),
		essential("Sunscreen", "toiletries", 1).note("High SPF"),
		item("After-Sun Lotion", "toiletries", 1),
		item("Beach Bag", "accessories", 1),
		item("Beach Cover-up", "clothing", 1),
		item("Snorkeling Gear", "accessories", 1).note("Or rent at destination"),
		item("Waterproof Phone Case", "accessories", 1),
	},
	"adventure": {
		essential("Hiking Boots", "footwear", 1),
		essential("Backpack", "accessories", 1),
		essential("Water Bottle", "accessories", 1),
		essential("First Aid Kit", "health", 1),
		item("Insect Repellent", "toiletries", 1),
		item("Multi-tool", "tools", 1),
		item("Headlamp/Flashlight", "tools", 1),
		item("Quick-dry Towel", "accessories", 1),
		item("Compass", "tools", 1),
		item("Energy Bars", "food", 5),
		item("Water Purification Tablets", "health", 1),
	},
	"camping": {
		essential("Tent", "equipment", 1),
		essential("Sleeping Bag", "equipment", 1),
		item("Sleeping Pad", "equipment", 1),
		item("Camping Stove", "equipment", 1),
		item("Cookware", "equipment", 1),
		essential("Headlamp", "tools", 1),
		item("Multi-tool", "tools", 1),
		essential("Insect Repellent", "toiletries", 1),
		item("Fire Starter", "tools", 1),
		item("Toilet Paper", "toiletries", 1),
		item("Trash Bags", "equipment", 3),
	},
	"cruise": {
		item("Formal Attire", "clothing", 1).note("For formal nights"),
		item("Motion Sickness Medication", "medication", 1),
		item("Light Jacket", "clothing", 1).note("For windy deck"),
		item("Day Bag", "accessories", 1),
		item("Swimwear", "clothing", 2),
		essential("Sunscreen", "toiletries", 1),
		item("Cash for Ports", "documents", 1).note("Small bills"),
	},
}

var destinationRules = []destinationRule{
	{"paris", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		item("French Phrase Book", "documents", 1),
		essential("Comfortable Walking Shoes", "footwear", 1),
		item("RFID-Blocking Wallet", "accessories", 1).note("For pickpocket protection"),
		item("Museum Pass", "documents", 1).note("Consider purchasing in advance"),
	}},
	{"tokyo", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		item("Japanese Phrase Book", "documents", 1),
		item("Portable Wifi", "electronics", 1),
		item("Hand Sanitizer", "toiletries", 1),
		item("Slip-on Shoes", "footwear", 1).note("Easy to remove at temples/homes"),
		essential("Comfortable Walking Shoes", "footwear", 1),
		item("Cash", "documents", 1).note("Japan is still cash-heavy"),
	}},
	{"new york", []Item{
		item("Subway Map", "documents", 1),
		essential("Comfortable Walking Shoes", "footwear", 1),
		item("City Pass", "documents", 1).note("Consider for attractions"),
		item("Umbrella", "accessories", 1),
		item("Light Layers", "clothing", 3).note("Weather can change quickly"),
	}},
	{"rome", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		item("Italian Phrase Book", "documents", 1),
		item("Modest Clothing for Vatican", "clothing", 1).note("Covers shoulders and knees"),
		essential("Comfortable Walking Shoes", "footwear", 1),
		item("Water Bottle", "accessories", 1).note("Can refill at public fountains"),
		item("Sun Hat", "accessories", 1),
	}},
	{"bali", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		item("Sarong", "clothing", 1).note("Required for temple visits"),
		essential("Insect Repellent", "toiletries", 1),
		item("Light, Modest Clothing", "clothing", 3).note("For temples"),
		essential("Sunscreen", "toiletries", 1),
		item("Indonesian Phrase Book", "documents", 1),
	}},
	{"london", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		essential("Umbrella", "accessories", 1),
		item("Oyster Card", "documents", 1).note("For public transport"),
		item("Rain Jacket", "clothing", 1),
		item("Layered Clothing", "clothing", 3).note("Weather changes frequently"),
	}},
	{"sydney", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		essential("High SPF Sunscreen", "toiletries", 1).note("Australian sun is strong"),
		item("Insect Repellent", "toiletries", 1),
		essential("Sunglasses", "accessories", 1),
		item("Swimwear", "clothing", 1),
		item("Rain Jacket", "clothing", 1),
	}},
	{"dubai", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		essential("Modest Clothing", "clothing", 3).note("Covers shoulders and knees"),
		essential("Sunscreen", "toiletries", 1),
		essential("Sunglasses", "accessories", 1),
		item("Scarf for Women", "accessories", 1).note("For mosque visits"),
		essential("Water Bottle", "accessories", 1),
	}},
	{"bangkok", []Item{
		essential("Universal Power Adapter", "electronics", 1),
		item("Modest Clothing", "clothing", 2).note("For temple visits"),
		essential("Insect Repellent", "toiletries", 1),
		item("Thai Phrase Book", "documents", 1),
		item("Hand Sanitizer", "toiletries", 1),
		item("Toilet Paper", "toiletries", 1).note("Not always available"),
	}},
}

// Used when no destination rule matches.
var genericDestinationItems = []Item{
	essential("Universal Power Adapter", "electronics", 1),
	item("Travel Phrase Book/App", "documents", 1),
}

var activityItems = ruleTable{
	"swimming": {
		essential("Swimsuit", "clothing", 2),
		item("Goggles", "accessories", 1),
		item("Swim Cap", "accessories", 1),
		essential("Waterproof Sunscreen", "toiletries", 1),
		item("Beach Towel", "accessories", 1),
		item("Flip Flops", "footwear", 1),
		item("Ear Plugs", "accessories", 1),
	},
	"hiking": {
		essential("Hiking Boots", "footwear", 1),
		item("Walking Stick", "accessories", 1),
		item("Trail Map", "documents", 1),
		item("GPS Device", "electronics", 1),
		item("Moisture-wicking Shirts", "clothing", 2),
		essential("Hiking Pants", "clothing", 1),
		essential("Hiking Socks", "clothing", 2),
		item("Bandana", "accessories", 1),
		item("Energy Bars", "food", 3),
		essential("First Aid Kit", "health", 1),
	},
	"skiing": {
		essential("Ski Jacket", "clothing", 1),
		essential("Ski Pants", "clothing", 1),
		essential("Thermal Underwear", "clothing", 2),
		essential("Ski Gloves", "accessories", 1),
		essential("Ski Goggles", "accessories", 1),
		essential("Ski Socks", "clothing", 3),
		essential("Base Layers", "clothing", 2),
		item("Fleece Mid-layer", "clothing", 1),
		item("Neck Gaiter", "accessories", 1),
		item("Lip Balm with SPF", "toiletries", 1),
		essential("Sunscreen", "toiletries", 1).note("Snow reflects UV"),
	},
	"photography": {
		essential("Camera", "electronics", 1),
		essential("Extra Batteries", "electronics", 2),
		essential("Memory Cards", "electronics", 2),
		item("Camera Cleaning Kit", "accessories", 1),
		item("Tripod", "equipment", 1),
		essential("Camera Bag", "accessories", 1),
		item("Lens Filters", "electronics", 1),
		item("Backup Storage Device", "electronics", 1),
	},
	"snorkeling": {
		essential("Snorkel Mask", "equipment", 1).note("Or rent at destination"),
		essential("Snorkel", "equipment", 1).note("Or rent at destination"),
		item("Fins", "equipment", 1).note("Or rent at destination"),
		item("Rashguard", "clothing", 1).note("Sun protection"),
		essential("Waterproof Sunscreen", "toiletries", 1),
		item("Waterproof Bag", "accessories", 1),
		item("Water Shoes", "footwear", 1),
	},
	"cycling": {
		essential("Cycling Shorts", "clothing", 2),
		item("Cycling Jersey", "clothing", 2),
		essential("Cycling Shoes", "footwear", 1),
		essential("Helmet", "equipment", 1),
		item("Cycling Gloves", "accessories", 1),
		item("Sunglasses", "accessories", 1),
		item("Repair Kit", "tools", 1),
		essential("Water Bottle", "accessories", 1),
		item("Energy Bars/Gels", "food", 3),
	},
	"running": {
		essential("Running Shoes", "footwear", 1),
		item("Running Shorts", "clothing", 2),
		item("Moisture-wicking Shirts", "clothing", 2),
		item("Running Socks", "clothing", 2),
		item("Sports Watch/GPS", "electronics", 1),
		item("Armband for Phone", "accessories", 1),
		item("Hydration Belt", "accessories", 1),
		item("Sunglasses", "accessories", 1),
		item("Cap", "accessories", 1),
	},
}

var genderItems = ruleTable{
	"female": {
		essential("Feminine Hygiene Products", "toiletries", 1),
		item("Makeup", "toiletries", 1),
		item("Hair Styling Tools", "toiletries", 1),
		item("Hair Accessories", "accessories", 1),
		essential("Birth Control", "medication", 1).note("If applicable"),
		item("Jewelry", "accessories", 1),
	},
	"male": {
		item("Razor/Shaving Cream", "toiletries", 1),
		item("Beard Trimmer", "toiletries", 1),
		item("Aftershave", "toiletries", 1),
	},
}

var ageItems = ruleTable{
	"infant": {
		essential("Diapers", "baby", 20),
		essential("Baby Wipes", "baby", 1),
		essential("Baby Food/Formula", "baby", 1),
		essential("Bottles", "baby", 2),
		essential("Baby Clothes", "clothing", 5),
		item("Baby Blanket", "baby", 1),
		item("Pacifier", "baby", 2),
		essential("Baby Carrier", "baby", 1),
		item("Diaper Rash Cream", "baby", 1),
		item("Baby Toys", "entertainment", 3),
	},
	"child": {
		essential("Kids' Clothes", "clothing", 5),
		essential("Kids' Shoes", "footwear", 2),
		item("Favorite Toy/Stuffed Animal", "entertainment", 1),
		item("Coloring Book/Crayons", "entertainment", 1),
		item("Tablet with Games", "electronics", 1),
		essential("Kid-safe Sunscreen", "toiletries", 1),
		essential("Child Medication", "medication", 1).note("If needed"),
		essential("Snacks", "food", 1),
	},
	"senior": {
		essential("Prescription Medications", "medication", 1).note("Extra supply"),
		item("Pill Organizer", "health", 1),
		essential("Reading Glasses", "accessories", 1),
		item("Medical Alert Bracelet", "accessories", 1).note("If applicable"),
		essential("Medical Insurance Cards", "documents", 1),
		essential("List of Medications", "documents", 1),
		essential("Mobility Aids", "health", 1).note("If needed"),
		essential("Extra Prescription Copies", "documents", 1),
	},
}

// durationMultipliers scales non-essential items of the listed categories.
var durationMultipliers = map[string]map[Bucket]float64{
	"clothing": {
		BucketShort:    1,
		BucketMedium:   1.5,
		BucketLong:     2,
		BucketExtended: 2.5,
	},
	"toiletries": {
		BucketShort:    1,
		BucketMedium:   1,
		BucketLong:     2,
		BucketExtended: 3,
	},
}

var tropicalDestinations = []string{"caribbean", "bali", "hawaii", "thailand"}

var laundrySoap = item("Travel Laundry Soap", "toiletries", 1)

var presentationItems = []Item{
	item("Presentation Remote", "electronics", 1),
	essential("Backup of Presentation", "documents", 1),
}
