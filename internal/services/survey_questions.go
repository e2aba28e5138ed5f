package services

import "giftfinder/internal/models/request_models"

func choices(values ...string) []request_models.SurveyOption {
	opts := make([]request_models.SurveyOption, 0, len(values))
	for _, v := range values {
		opts = append(opts, request_models.SurveyOption{Label: v, Value: v})
	}
	return opts
}

// SurveyQuestions is the fixed, ordered question list of the gift survey.
// The numeric budget question stays last.
var SurveyQuestions = []request_models.SurveyQuestion{
	{
		ID:       "tech_comfort",
		Category: "technology",
		Question: "How comfortable are you with technology?",
		Options:  choices("Very Comfortable", "Comfortable", "Neutral", "Not Very Comfortable", "Not Comfortable"),
	},
	{
		ID:       "tech_devices",
		Category: "technology",
		Question: "Which devices do you use most frequently?",
		Options:  choices("Smartphone", "Laptop", "Tablet", "Gaming Console", "Smart Home Devices"),
	},
	{
		ID:       "tech_interests",
		Category: "technology",
		Question: "What type of tech interests you most?",
		Options:  choices("Gaming", "Photography", "Smart Home", "Audio/Music", "Wearables"),
	},
	{
		ID:       "fashion_style",
		Category: "fashion",
		Question: "How would you describe your fashion style?",
		Options:  choices("Casual", "Professional", "Trendy", "Athletic", "Vintage"),
	},
	{
		ID:       "preferred_accessories",
		Category: "fashion",
		Question: "What accessories do you prefer?",
		Options:  choices("Watches", "Jewelry", "Bags", "Scarves", "None"),
	},
	{
		ID:       "color_preference",
		Category: "fashion",
		Question: "What colors do you prefer in clothing?",
		Options:  choices("Neutral Colors", "Bright Colors", "Dark Colors", "Pastels", "Mixed"),
	},
	{
		ID:       "home_style",
		Category: "home",
		Question: "Whats your preferred home decor style?",
		Options:  choices("Modern", "Traditional", "Minimalist", "Rustic", "Eclectic"),
	},
	{
		ID:       "home_priority",
		Category: "home",
		Question: "Whats most important in your living space?",
		Options:  choices("Comfort", "Organization", "Aesthetics", "Functionality", "Entertainment"),
	},
	{
		ID:       "outdoor_activities",
		Category: "hobbies",
		Question: "What outdoor activities do you enjoy?",
		Options:  choices("Hiking", "Gardening", "Sports", "Photography", "None"),
	},
	{
		ID:       "indoor_hobbies",
		Category: "hobbies",
		Question: "What indoor activities do you prefer?",
		Options:  choices("Reading", "Gaming", "Cooking", "Crafts", "Music"),
	},
	{
		ID:       "movie_genres",
		Category: "entertainment",
		Question: "What movie genres do you prefer?",
		Options:  choices("Action", "Comedy", "Drama", "Sci-Fi", "Documentary"),
	},
	{
		ID:       "music_preference",
		Category: "entertainment",
		Question: "What type of music do you enjoy?",
		Options:  choices("Rock", "Pop", "Classical", "Electronic", "Jazz"),
	},
	{
		ID:       "daily_routine",
		Category: "lifestyle",
		Question: "How would you describe your daily routine?",
		Options:  choices("Very Active", "Moderately Active", "Balanced", "Mostly Relaxed", "Very Relaxed"),
	},
	{
		ID:       "work_style",
		Category: "lifestyle",
		Question: "Whats your work/study environment like?",
		Options:  choices("Office", "Remote Work", "Active/On-foot", "Creative Studio", "Mixed"),
	},
	{
		ID:       "cooking_interest",
		Category: "food",
		Question: "How interested are you in cooking?",
		Options:  choices("Love to Cook", "Cook Occasionally", "Prefer Easy Meals", "Dont Cook Much", "Not Interested"),
	},
	{
		ID:       "food_preference",
		Category: "food",
		Question: "What types of food do you prefer?",
		Options:  choices("International Cuisine", "Health Food", "Comfort Food", "Gourmet", "Quick & Easy"),
	},
	{
		ID:       "book_preference",
		Category: "books",
		Question: "What types of books do you enjoy?",
		Options:  choices("Fiction", "Non-fiction", "Self-improvement", "Technical", "Dont Read Much"),
	},
	{
		ID:       "learning_style",
		Category: "education",
		Question: "How do you prefer to learn new things?",
		Options:  choices("Reading", "Video Tutorials", "Hands-on Practice", "Audio Learning", "Group Learning"),
	},
	{
		ID:       "fitness_interest",
		Category: "wellness",
		Question: "How interested are you in fitness?",
		Options:  choices("Very Interested", "Moderately Interested", "Casual Interest", "Limited Interest", "Not Interested"),
	},
	{
		ID:       "stress_relief",
		Category: "wellness",
		Question: "How do you prefer to relax?",
		Options:  choices("Exercise", "Meditation", "Entertainment", "Creative Activities", "Social Activities"),
	},
	{
		ID:        "budget",
		Category:  "preferences",
		Question:  "What is your budget range?",
		IsNumeric: true,
		Options: []request_models.SurveyOption{
			{Label: "Under $50", Value: "50", Amount: 50},
			{Label: "$50 - $100", Value: "100", Amount: 100},
			{Label: "$100 - $200", Value: "200", Amount: 200},
			{Label: "$200 - $500", Value: "500", Amount: 500},
			{Label: "Over $500", Value: "1000", Amount: 1000},
		},
	},
}
