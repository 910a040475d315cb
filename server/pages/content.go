package pages

// Destination is a featured place on the destinations page.
type Destination struct {
	Name     string
	Summary  string
	BestTime string
}

// Guide is a titled list of tips.
type Guide struct {
	Title string
	Tips  []string
}

// Testimonial is a traveller quote.
type Testimonial struct {
	Quote  string
	Author string
	Trip   string
}

// Question is one FAQ entry.
type Question struct {
	Question string
	Answer   string
}

var destinations = []Destination{
	{
		Name:     "Kyoto, Japan",
		Summary:  "Temples, gardens and tea houses, with easy day trips to Nara and Osaka.",
		BestTime: "March to May, October to November",
	},
	{
		Name:     "Lisbon, Portugal",
		Summary:  "Hilltop viewpoints, tram rides and seafood, a short train from Sintra and the coast.",
		BestTime: "April to June, September to October",
	},
	{
		Name:     "Cape Town, South Africa",
		Summary:  "Table Mountain, the winelands and a coastline made for road trips.",
		BestTime: "November to March",
	},
	{
		Name:     "Mexico City, Mexico",
		Summary:  "Museums, markets and one of the best street food scenes anywhere.",
		BestTime: "March to May",
	},
}

var guides = []Guide{
	{
		Title: "Packing light",
		Tips: []string{
			"Plan outfits around two or three base colours.",
			"Bring a universal power adapter and a small power bank.",
			"Keep medication and documents in your carry-on.",
		},
	},
	{
		Title: "Getting around",
		Tips: []string{
			"Buy a rechargeable transit card on day one.",
			"Download offline maps before you leave the airport.",
			"Check the last train times before heading out at night.",
		},
	},
	{
		Title: "Staying safe",
		Tips: []string{
			"Share your itinerary with someone at home.",
			"Keep a photo of your passport separate from the original.",
			"Learn the local emergency number.",
		},
	},
}

var testimonials = []Testimonial{
	{
		Quote:  "The day-by-day plan saved us hours of research. We followed almost all of it.",
		Author: "Amara",
		Trip:   "Nairobi to Zanzibar, 6 days",
	},
	{
		Quote:  "Loved the evening suggestions. The travel notes about tipping were spot on.",
		Author: "Jonas",
		Trip:   "Berlin to Prague, 3 days",
	},
	{
		Quote:  "I used it for a work trip and still found time for the best museum in town.",
		Author: "Priya",
		Trip:   "Mumbai to Singapore, 2 days",
	},
}

var faq = []Question{
	{
		Question: "How is my itinerary generated?",
		Answer:   "Your start location, destination and duration are sent to a language model, which drafts a plan with morning, afternoon and evening activities for each day.",
	},
	{
		Question: "Why do I sometimes see no travel notes?",
		Answer:   "Notes are shown when the generated plan contains a notes section. If the model leaves it out, only the itinerary is displayed.",
	},
	{
		Question: "Are my requests stored?",
		Answer:   "No. Each request is handled on its own and nothing is saved after the response is sent.",
	},
	{
		Question: "What should I enter as duration?",
		Answer:   "Anything readable works, for example \"3 days\", \"a long weekend\" or \"two weeks\".",
	},
}
