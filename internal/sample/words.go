package sample

var firstNames = []string{
	"Alice", "Bruno", "Chloe", "David", "Emma", "Farid", "Grace", "Hugo",
	"Ines", "Jules", "Karim", "Lea", "Marc", "Nina", "Oscar", "Paula",
	"Quentin", "Rosa", "Samir", "Tina", "Ugo", "Vera", "Walid", "Yasmine",
}

var lastNames = []string{
	"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit",
	"Durand", "Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel",
	"Garcia", "Smith", "Johnson", "Brown", "Taylor", "Wilson", "Nguyen",
}

var cities = []string{
	"Paris", "Lyon", "Marseille", "Toulouse", "Nantes", "Lille", "Bordeaux",
	"Montreal", "Brussels", "Geneva", "Dakar", "Casablanca", "Tunis", "Quebec",
}

var countries = []string{
	"France", "Belgium", "Switzerland", "Canada", "Senegal", "Morocco",
	"Tunisia", "Spain", "Germany", "Italy", "Portugal", "Ireland",
}

var streets = []string{
	"Rue de la Paix", "Avenue Victor Hugo", "Boulevard Voltaire",
	"Rue du Moulin", "Chemin des Vignes", "Place de la Gare", "Main Street",
	"Oak Avenue", "Church Road", "Mill Lane",
}

var domains = []string{"example.com", "example.org", "example.net", "mail.test"}

var words = []string{
	"alpha", "amber", "atlas", "beacon", "cedar", "comet", "delta", "ember",
	"fable", "garnet", "harbor", "indigo", "juniper", "kernel", "lumen",
	"maple", "nectar", "orbit", "pepper", "quartz", "raven", "saffron",
	"tundra", "umber", "velvet", "willow", "zenith",
}
