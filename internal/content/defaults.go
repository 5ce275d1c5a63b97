package content

const unsplash = "https://images.unsplash.com/"

// Default returns the built-in Gamma copy. Every call returns a fresh copy.
func Default() *Page {
	return &Page{
		Lang:        "he",
		Title:       "מסעדה מוביל בישראל",
		Description: "מסעדה גמא - אוכל בריא, טרי ואורגני",
		Hero: Hero{
			BusinessName: DefaultBusinessName,
			Headline:     "מסעדה מוביל בישראל",
			Tagline:      "חווית לקוח מושלמת בכל ביקור",
			CTALabel:     "קבע תור עכשיו",
			Blurb:        "אנחנו מסעדה מוביל בתחום הטכנולוגיה עם ניסיון של שנים רבות. אנחנו מתמחים במתן שירות מקצועי ואיכותי ללקוחותינו.",
			Image: Image{
				URL: unsplash + "photo-1517248135467-4c7edcad34c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
				Alt: "מסעדה גמא - אווירה",
			},
		},
		About: About{
			Heading: "אודות מסעדה גמא",
			Intro:   "אנחנו מסעדה מובילה בתחום הבריאות עם ניסיון של שנים רבות. אנחנו מתמחים במתן שירות מקצועי ואיכותי ללקוחותינו.",
			Features: []Card{
				{Icon: "utensils", Title: "מטבח איכותי", Description: "אנו מקפידים על חומרי גלם טריים ואיכותיים בכל מנה שאנו מכינים"},
				{Icon: "leaf", Title: "אוכל בריא", Description: "התפריט שלנו מתוכנן בקפידה כדי לספק אפשרויות בריאות ומזינות"},
				{Icon: "users", Title: "צוות מקצועי", Description: "הצוות שלנו מורכב ממומחים בתחומם עם ניסיון רב בענף המסעדנות"},
				{Icon: "award", Title: "שירות מצטיין", Description: "אנו מחויבים לספק חוויית לקוח יוצאת דופן בכל ביקור"},
			},
			TeamImage: Image{
				URL: unsplash + "photo-1559339352-11d035aa65de?ixlib=rb-4.0.3&auto=format&fit=crop&w=1074&q=80",
				Alt: "צוות מסעדה גמא בעבודה",
			},
			TeamCaption: "הצוות המקצועי שלנו",
			Story: Story{
				Heading: "הסיפור שלנו",
				Paragraphs: []string{
					"מסעדה גמא נוסדה לפני 15 שנים מתוך אהבה לאוכל בריא ואיכותי. המייסדים שלנו, שף מוביל ותזונאית קלינית, חברו יחד כדי ליצור מקום שמשלב טעמים נפלאים עם ערכים תזונתיים גבוהים.",
					"אנו מאמינים שאוכל בריא יכול וצריך להיות טעים, מגוון ומהנה. התפריט שלנו משתנה עם עונות השנה כדי להבטיח שימוש בחומרי גלם טריים ואיכותיים.",
					"הצוות שלנו מחויב לספק לכם חוויה קולינרית יוצאת דופן בכל ביקור, תוך שמירה על סטנדרטים גבוהים של שירות ואיכות.",
				},
				Image: Image{
					URL: unsplash + "photo-1600891964599-f61ba0e24092?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80",
					Alt: "פנים המסעדה",
				},
			},
			VisitHeading: "בואו לבקר אותנו",
			CTALabel:     "הזמינו שולחן עכשיו",
		},
		Services: Services{
			Heading:       "השירותים שלנו",
			Intro:         "במסעדת גמא אנו מציעים חוויה קולינרית בריאה ומיוחדת, עם דגש על מזון טרי, אורגני ומזין שמוכן בקפידה על ידי השפים המומחים שלנו.",
			BackgroundURL: unsplash + "photo-1495195134817-aeb325a55b65?ixlib=rb-4.0.3&auto=format&fit=crop&w=1776&q=80",
			Cards: []Card{
				{
					Icon:        "seedling",
					Title:       "מנות אורגניות",
					Description: "אנו מכינים את כל המנות שלנו מחומרי גלם אורגניים טריים שנבחרו בקפידה מהחוות המקומיות הטובות ביותר.",
					ImageURL:    unsplash + "photo-1498837167922-ddd27525d352?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80",
				},
				{
					Icon:        "leaf",
					Title:       "תפריט צמחוני ייחודי",
					Description: "מגוון רחב של מנות צמחוניות וטבעוניות עשירות בטעמים ובערכים תזונתיים, מבושלות בשיטות בריאות.",
					ImageURL:    unsplash + "photo-1512621776951-a57141f2eefd?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80",
				},
				{
					Icon:        "apple-alt",
					Title:       "קינוחים בריאים",
					Description: "קינוחים מפנקים המוכנים עם חומרים טבעיים, דלי סוכר ועשירים בטעמים מפתיעים שישאירו אתכם מרוצים.",
					ImageURL:    unsplash + "photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=1065&q=80",
				},
				{
					Icon:        "carrot",
					Title:       "מיצים טבעיים",
					Description: "מיצים וסמוזי'ס טריים המוכנים במקום מפירות וירקות עונתיים, מלאים בויטמינים ומינרלים חיוניים.",
					ImageURL:    unsplash + "photo-1589733955941-5eeaf752f6dd?ixlib=rb-4.0.3&auto=format&fit=crop&w=1074&q=80",
				},
			},
			CTALabel: "הזמינו שולחן עכשיו",
		},
	}
}

// applyDefaults fills optional fields that were left empty.
func applyDefaults(p *Page) {
	if p.Hero.BusinessName == "" {
		p.Hero.BusinessName = DefaultBusinessName
	}
	if p.Title == "" {
		p.Title = p.Hero.Headline
	}
}
