package catalog

// Categories is the predefined category set. It is immutable at runtime;
// course records reference it by ID.
var Categories = []Category{
	{ID: "cat_biz", Name: "Ganacsiga", Color: "#3b82f6"},
	{ID: "cat_code", Name: "Code-ka", Color: "#10b981"},
	{ID: "cat_design", Name: "Naqshadaynta", Color: "#f43f5e"},
	{ID: "cat_data", Name: "Xogta", Color: "#f59e0b"},
	{ID: "cat_marketing", Name: "Suuq-geynta", Color: "#0ea5e9"},
	{ID: "cat_lang", Name: "Luuqadaha", Color: "#a855f7"},
	{ID: "cat_health", Name: "Caafimaadka", Color: "#ef4444"},
	{ID: "cat_photo", Name: "Sawirka", Color: "#f97316"},
}

// CategoryByID resolves a category from the fixed set.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// seedCourses is the built-in catalog used when nothing has been persisted
// yet (or the persisted value cannot be decoded).
func seedCourses() []Course {
	return []Course{
		{
			ID:         "c1",
			Title:      "Hoggaaminta Fulinta & Maareynta Isbeddelka Ganacsiga",
			Category:   "GANACSIGA",
			CategoryID: "cat_biz",
			Price:      99.00,
			Rating:     4.9,
			Duration:   "14h 20m",
			Image:      "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80&w=400",
			VideoURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Topics: []Topic{
				{ID: "t1", Title: "Hordhaca Maamulka", VideoURL: "https://youtu.be/dQw4w9WgXcQ"},
				{ID: "t2", Title: "Istaraatiijiyadda Ganacsiga", VideoURL: "https://youtu.be/dQw4w9WgXcQ"},
			},
		},
		{
			ID:         "c2",
			Title:      "Python for Data Science: Min Bilow ilaa Pro",
			Category:   "CODE-KA",
			CategoryID: "cat_code",
			Price:      125.00,
			Rating:     4.8,
			Duration:   "32h 45m",
			Image:      "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?auto=format&fit=crop&q=80&w=400",
			VideoURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Topics: []Topic{
				{ID: "p1", Title: "Syntax-ka Python", VideoURL: "https://youtu.be/dQw4w9WgXcQ"},
				{ID: "p2", Title: "Pandas & Dataframes", VideoURL: "https://youtu.be/dQw4w9WgXcQ"},
			},
		},
		{
			ID:         "c3",
			Title:      "Naqshadaynta UI/UX ee App-yada Casriga ah",
			Category:   "NAQSHADAYNTA",
			CategoryID: "cat_design",
			Price:      85.00,
			Rating:     4.7,
			Duration:   "22h 10m",
			Image:      "https://images.unsplash.com/photo-1586717791821-3f44a563eb4c?auto=format&fit=crop&q=80&w=400",
			Topics:     []Topic{},
		},
	}
}
