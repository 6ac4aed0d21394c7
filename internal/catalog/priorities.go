package catalog

func defaultPriorities() []PriorityOption {
	return []PriorityOption{
		{ID: "balanced", Label: "Zbalansowane", Sublabel: "Najlepsza równowaga", Phrase: "zbalansowane podejście", Emoji: "⚖️", Color: "#d4af37"},
		{ID: "durable", Label: "Najtrwalsze", Sublabel: "Maksymalna żywotność", Phrase: "najtrwalsze rozwiązanie", Emoji: "🏗️", Color: "#38bdf8"},
		{ID: "min_invasive", Label: "Najmniej inwazyjne", Sublabel: "Jak najmniej interwencji", Phrase: "najmniej inwazyjne rozwiązanie", Emoji: "🌿", Color: "#10b981"},
		{ID: "fast", Label: "Najszybciej", Sublabel: "Najkrótszy czas leczenia", Phrase: "najszybsze rozwiązanie", Emoji: "⚡", Color: "#f59e0b"},
		{ID: "easy_maintenance", Label: "Najłatwiej utrzymać", Sublabel: "Prosta higiena i serwis", Phrase: "najłatwiejsze w utrzymaniu", Emoji: "🧹", Color: "#a855f7"},
	}
}

func defaultWeights() map[string]Weights {
	return map[string]Weights{
		"balanced":         {Durability: 0.25, Speed: 0.25, MinInvasive: 0.2, Maintenance: 0.2, Risk: 0.1},
		"durable":          {Durability: 0.45, Speed: 0.1, MinInvasive: 0.1, Maintenance: 0.15, Risk: 0.2},
		"min_invasive":     {Durability: 0.1, Speed: 0.15, MinInvasive: 0.45, Maintenance: 0.1, Risk: 0.2},
		"fast":             {Durability: 0.1, Speed: 0.5, MinInvasive: 0.15, Maintenance: 0.1, Risk: 0.15},
		"easy_maintenance": {Durability: 0.15, Speed: 0.1, MinInvasive: 0.1, Maintenance: 0.45, Risk: 0.2},
	}
}

func defaultTableRowLabels() []TableRowLabel {
	return []TableRowLabel{
		{Key: "time", Label: "Czas leczenia", Tooltip: "Orientacyjny czas od pierwszej wizyty do efektu końcowego"},
		{Key: "visits", Label: "Liczba wizyt", Tooltip: "Orientacyjna liczba wizyt w gabinecie"},
		{Key: "durability", Label: "Trwałość", Tooltip: "Przewidywana żywotność rozwiązania (5 = najdłuższa)"},
		{Key: "invasiveness", Label: "Inwazyjność", Tooltip: "Zakres interwencji (5 = najmniej inwazyjne)"},
		{Key: "risk", Label: "Ryzyko", Tooltip: "Ogólne ryzyko i ograniczenia (5 = najniższe)"},
		{Key: "hygiene", Label: "Higiena", Tooltip: "Łatwość utrzymania higieny (5 = najłatwiejsza)"},
		{Key: "maintenance", Label: "Serwis / kontrole", Tooltip: "Wymagane kontrole i konserwacja"},
	}
}

func defaultCategories() []Category {
	return []Category{
		{ID: "estetyka", Title: "Estetyka", Subtitle: "Uśmiech, kolor, kształt", Icon: "✨", Color: "#a855f7"},
		{ID: "braki", Title: "Braki zębowe", Subtitle: "Implanty, mosty, protezy", Icon: "🦷", Color: "#38bdf8"},
		{ID: "kanalowe", Title: "Leczenie kanałowe", Subtitle: "Ratowanie zęba", Icon: "🔬", Color: "#f59e0b"},
		{ID: "periodontologia", Title: "Periodontologia", Subtitle: "Dziąsła i higienizacja", Icon: "🩺", Color: "#10b981"},
		{ID: "chirurgia", Title: "Chirurgia", Subtitle: "Ekstrakcje i zabiegi", Icon: "🔪", Color: "#ef4444"},
		{ID: "profilaktyka", Title: "Profilaktyka", Subtitle: "Codzienna pielęgnacja", Icon: "🛡️", Color: "#06b6d4"},
		{ID: "dzieci", Title: "Dzieci", Subtitle: "Stomatologia dziecięca", Icon: "🧒", Color: "#ec4899"},
	}
}
