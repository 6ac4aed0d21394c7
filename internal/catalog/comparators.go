package catalog

// defaultComparators returns the production scenario set. Definition order
// is the display order on the category pages.
func defaultComparators() []Comparator {
	return []Comparator{
		// Estetyka
		{
			ID: "smile_upgrade", CategoryID: "estetyka",
			Title: "Metamorfoza uśmiechu", Subtitle: "Wybielanie vs bonding vs licówki vs korony",
			Icon: "😁", Color: "#a855f7",
			MethodIDs: []string{"whitening", "bonding_smile", "veneer_porc_smile", "crown_smile"},
			Questions: []Question{
				{ID: "goal", Label: "Co chcesz zmienić?", Options: []QuestionOption{
					{Value: "color", Label: "Tylko kolor (jaśniejszy)", Emoji: "🎨"},
					{Value: "shape", Label: "Kształt i proporcje", Emoji: "📐"},
					{Value: "both", Label: "Kolor i kształt", Emoji: "✨"},
				}},
				{ID: "scope", Label: "Ile zębów dotyczy zmiana?", Options: []QuestionOption{
					{Value: "few", Label: "1–2 zęby", Emoji: "1️⃣"},
					{Value: "medium", Label: "4–6 zębów", Emoji: "🔢"},
					{Value: "full", Label: "8–10 (cały łuk)", Emoji: "😁"},
				}},
				{ID: "bruxism", Label: "Czy zaciskasz/zgrzytasz zębami?", Options: []QuestionOption{
					{Value: "no", Label: "Nie / nie wiem", Emoji: "😊"},
					{Value: "yes", Label: "Tak, mam bruksizm", Emoji: "😬"},
				}},
			},
		},
		{
			ID: "veneer_type", CategoryID: "estetyka",
			Title: "Licówki: kompozyt vs porcelana", Subtitle: "Szybkość vs trwałość",
			Icon: "💎", Color: "#a855f7",
			MethodIDs: []string{"veneer_comp_type", "veneer_porc_type"},
			Questions: []Question{
				{ID: "scope_v", Label: "Ile zębów planujesz?", Options: []QuestionOption{
					{Value: "few", Label: "1–3 zęby", Emoji: "1️⃣"},
					{Value: "many", Label: "4–10 zębów", Emoji: "🔢"},
				}},
				{ID: "priority_v", Label: "Co ważniejsze?", Options: []QuestionOption{
					{Value: "speed", Label: "Szybkość realizacji", Emoji: "⚡"},
					{Value: "longevity", Label: "Trwałość na lata", Emoji: "🏰"},
				}},
				{ID: "bruxism_v", Label: "Bruksizm?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "😊"},
					{Value: "yes", Label: "Tak", Emoji: "😬"},
				}},
			},
		},
		{
			ID: "bonding_scope", CategoryID: "estetyka",
			Title: "Bonding: punktowy vs full arch", Subtitle: "1–2 zęby vs 6–10 zębów",
			Icon: "🖌️", Color: "#10b981",
			MethodIDs: []string{"bonding_spot", "bonding_full"},
			Questions: []Question{
				{ID: "problem_b", Label: "Jaki problem chcesz rozwiązać?", Options: []QuestionOption{
					{Value: "chip", Label: "Ukruszenie / odłamanie", Emoji: "💔"},
					{Value: "gap", Label: "Diastema / przerwy", Emoji: "↔️"},
					{Value: "shape", Label: "Kształt / proporcje", Emoji: "📐"},
				}},
				{ID: "scope_b", Label: "Ile zębów wymaga korekty?", Options: []QuestionOption{
					{Value: "few", Label: "1–2 zęby", Emoji: "1️⃣"},
					{Value: "many", Label: "4–10 zębów", Emoji: "🔢"},
				}},
				{ID: "bruxism_b", Label: "Bruksizm?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "😊"},
					{Value: "yes", Label: "Tak", Emoji: "😬"},
				}},
			},
		},
		{
			ID: "straighten_vs_mask", CategoryID: "estetyka",
			Title: "Prostowanie vs maskowanie", Subtitle: "Ortodoncja (alignery) vs bonding/licówki",
			Icon: "🔄", Color: "#06b6d4",
			MethodIDs: []string{"aligners", "bonding_mask"},
			Questions: []Question{
				{ID: "problem_s", Label: "Co Ci przeszkadza?", Options: []QuestionOption{
					{Value: "crowding", Label: "Stłoczenia / rotacje", Emoji: "🔀"},
					{Value: "gaps", Label: "Przerwy / diastemy", Emoji: "↔️"},
					{Value: "both", Label: "I jedno, i drugie", Emoji: "🔄"},
				}},
				{ID: "patience", Label: "Ile czasu możesz poświęcić?", Options: []QuestionOption{
					{Value: "fast", Label: "Chcę efekt w dniach/tygodniach", Emoji: "⚡"},
					{Value: "wait", Label: "Mogę poczekać miesiące", Emoji: "⏳"},
				}},
				{ID: "cause", Label: "Chcesz leczyć przyczynę czy efekt?", Options: []QuestionOption{
					{Value: "cause", Label: "Przyczynę — ruch zębów", Emoji: "🎯"},
					{Value: "effect", Label: "Efekt — szybka zmiana wyglądu", Emoji: "🎭"},
				}},
			},
		},
		{
			ID: "diastema", CategoryID: "estetyka",
			Title: "Diastema — jak zamknąć?", Subtitle: "Bonding vs ortodoncja vs licówki",
			Icon: "↔️", Color: "#f59e0b",
			MethodIDs: []string{"bonding_dia", "ortho_dia", "veneer_dia"},
			Questions: []Question{
				{ID: "gap_size", Label: "Jak duża jest przerwa?", Options: []QuestionOption{
					{Value: "small", Label: "Mała (<2 mm)", Emoji: "📏"},
					{Value: "medium", Label: "Średnia (2–3 mm)", Emoji: "📐"},
					{Value: "large", Label: "Duża (>3 mm)", Emoji: "↔️"},
				}},
				{ID: "other_issues", Label: "Czy są inne nierówności?", Options: []QuestionOption{
					{Value: "no", Label: "Nie, tylko diastema", Emoji: "✅"},
					{Value: "yes", Label: "Tak, inne nierówności też", Emoji: "🔀"},
				}},
				{ID: "speed_d", Label: "Jak szybko chcesz efekt?", Options: []QuestionOption{
					{Value: "asap", Label: "Jak najszybciej", Emoji: "⚡"},
					{Value: "can_wait", Label: "Mogę poczekać", Emoji: "⏳"},
				}},
			},
		},
		{
			ID: "bruxism_wear", CategoryID: "estetyka",
			Title: "Starcia / bruksizm", Subtitle: "Szyna + odbudowy vs licówki vs korony",
			Icon: "😬", Color: "#ef4444",
			MethodIDs: []string{"splint_rebuild", "veneer_brux", "crown_brux"},
			Questions: []Question{
				{ID: "wear_level", Label: "Stopień starć?", Options: []QuestionOption{
					{Value: "mild", Label: "Wczesne (lekkie ścięcie brzegów)", Emoji: "🟡"},
					{Value: "moderate", Label: "Umiarkowane (widoczna utrata tkanek)", Emoji: "🟠"},
					{Value: "severe", Label: "Zaawansowane (zęby krótkie, płaskie)", Emoji: "🔴"},
				}},
				{ID: "tooth_count_w", Label: "Ile zębów wymaga odbudowy?", Options: []QuestionOption{
					{Value: "few", Label: "1–4 zęby", Emoji: "1️⃣"},
					{Value: "many", Label: "8+ zębów", Emoji: "🔢"},
				}},
				{ID: "splint_ok", Label: "Czy zaakceptujesz szynę nocną?", Options: []QuestionOption{
					{Value: "yes", Label: "Tak, bez problemu", Emoji: "✅"},
					{Value: "no", Label: "Wolałbym się obejść bez", Emoji: "❌"},
				}},
			},
		},

		// Braki zębowe
		{
			ID: "missing_tooth", CategoryID: "braki",
			Title: "Brak zęba", Subtitle: "Implant vs most vs proteza",
			Icon: "🦷", Color: "#38bdf8",
			MethodIDs: []string{"implant", "bridge", "partial_denture"},
			Questions: []Question{
				{ID: "location", Label: "Gdzie brakuje zęba?", Options: []QuestionOption{
					{Value: "front", Label: "Strefa uśmiechu (1–5)", Emoji: "😁"},
					{Value: "back", Label: "Zęby boczne (6–8)", Emoji: "🔨"},
				}},
				{ID: "count", Label: "Ile zębów brakuje?", Options: []QuestionOption{
					{Value: "one", Label: "1 ząb", Emoji: "1️⃣"},
					{Value: "few", Label: "2–3 zęby", Emoji: "🔢"},
					{Value: "many", Label: "4+ zębów", Emoji: "📊"},
				}},
				{ID: "neighbors", Label: "Stan sąsiednich zębów?", Options: []QuestionOption{
					{Value: "healthy", Label: "Zdrowe, bez wypełnień", Emoji: "✅"},
					{Value: "restored", Label: "Z wypełnieniami lub koronami", Emoji: "🔧"},
				}},
			},
		},
		{
			ID: "implant_timing", CategoryID: "braki",
			Title: "Implant: natychmiastowy vs odroczony", Subtitle: "Od razu po ekstrakcji vs po gojeniu",
			Icon: "⏱️", Color: "#38bdf8",
			MethodIDs: []string{"implant_immediate", "implant_delayed"},
			Questions: []Question{
				{ID: "infection", Label: "Czy jest stan zapalny / ropień?", Options: []QuestionOption{
					{Value: "no", Label: "Nie, ząb jest spokojny", Emoji: "✅"},
					{Value: "yes", Label: "Tak, jest infekcja", Emoji: "🔴"},
				}},
				{ID: "zone", Label: "Gdzie jest ząb?", Options: []QuestionOption{
					{Value: "aesthetic", Label: "Strefa uśmiechu", Emoji: "😁"},
					{Value: "posterior", Label: "Zęby boczne", Emoji: "🔨"},
				}},
				{ID: "bone", Label: "Co mówi lekarz o kości?", Options: []QuestionOption{
					{Value: "good", Label: "Wystarczająca kość", Emoji: "💪"},
					{Value: "deficient", Label: "Brak kości / augmentacja", Emoji: "📉"},
				}},
			},
		},
		{
			ID: "bridge_types", CategoryID: "braki",
			Title: "Uzupełnienie stałe", Subtitle: "Implant+korona vs most na zębach vs most na implantach",
			Icon: "🌉", Color: "#f59e0b",
			MethodIDs: []string{"implant", "bridge_on_teeth", "bridge_on_implants"},
			Questions: []Question{
				{ID: "gap_count", Label: "Ile zębów brakuje obok siebie?", Options: []QuestionOption{
					{Value: "one", Label: "1 ząb", Emoji: "1️⃣"},
					{Value: "two_three", Label: "2–3 zęby", Emoji: "🔢"},
					{Value: "more", Label: "4+ zębów", Emoji: "📊"},
				}},
				{ID: "abutment", Label: "Stan zębów filarowych?", Options: []QuestionOption{
					{Value: "healthy", Label: "Zdrowe", Emoji: "✅"},
					{Value: "restored", Label: "Z koronami/dużymi wypełnieniami", Emoji: "🔧"},
				}},
				{ID: "bone_b", Label: "Kość wystarczająca na implanty?", Options: []QuestionOption{
					{Value: "yes", Label: "Tak", Emoji: "💪"},
					{Value: "no", Label: "Nie / nie wiem", Emoji: "❓"},
				}},
			},
		},
		{
			ID: "denture_types", CategoryID: "braki",
			Title: "Proteza częściowa — jaki typ?", Subtitle: "Akrylowa vs szkieletowa vs elastyczna",
			Icon: "⚙️", Color: "#10b981",
			MethodIDs: []string{"denture_acrylic", "denture_skeletal", "denture_flexible"},
			Questions: []Question{
				{ID: "missing_count_d", Label: "Ile zębów brakuje?", Options: []QuestionOption{
					{Value: "few", Label: "1–3 zęby", Emoji: "1️⃣"},
					{Value: "many", Label: "4+ zębów", Emoji: "📊"},
				}},
				{ID: "aesthetics_d", Label: "Jak ważna jest estetyka?", Options: []QuestionOption{
					{Value: "critical", Label: "Bardzo ważna — klamry niewidoczne", Emoji: "💎"},
					{Value: "ok", Label: "Akceptuję widoczne klamry", Emoji: "👍"},
				}},
				{ID: "duration_d", Label: "Na jak długo planujesz protezę?", Options: []QuestionOption{
					{Value: "temp", Label: "Tymczasowo (przed implantami)", Emoji: "⏳"},
					{Value: "long", Label: "Na dłużej / docelowo", Emoji: "🏰"},
				}},
			},
		},
		{
			ID: "full_denture", CategoryID: "braki",
			Title: "Bezzębie: proteza vs overdenture", Subtitle: "Proteza całkowita vs proteza na implantach",
			Icon: "🔩", Color: "#38bdf8",
			MethodIDs: []string{"full_denture", "overdenture"},
			Questions: []Question{
				{ID: "jaw", Label: "Która szczęka?", Options: []QuestionOption{
					{Value: "upper", Label: "Górna", Emoji: "⬆️"},
					{Value: "lower", Label: "Dolna", Emoji: "⬇️"},
				}},
				{ID: "stability", Label: "Czy proteza \"skacze\"?", Options: []QuestionOption{
					{Value: "stable", Label: "Trzyma się dobrze", Emoji: "✅"},
					{Value: "loose", Label: "Luźna, spada przy jedzeniu", Emoji: "😫"},
				}},
				{ID: "surgery_ok", Label: "Akceptujesz zabieg chirurgiczny?", Options: []QuestionOption{
					{Value: "yes", Label: "Tak", Emoji: "✅"},
					{Value: "no", Label: "Nie / boję się", Emoji: "❌"},
				}},
			},
		},
		{
			ID: "onlay_vs_crown", CategoryID: "braki",
			Title: "Onlay vs korona", Subtitle: "Zachowanie tkanek vs pełna ochrona",
			Icon: "🧩", Color: "#10b981",
			MethodIDs: []string{"onlay", "crown_rebuild"},
			Questions: []Question{
				{ID: "endo_done", Label: "Czy ząb miał leczenie kanałowe?", Options: []QuestionOption{
					{Value: "no", Label: "Nie — ząb żywy", Emoji: "💚"},
					{Value: "yes", Label: "Tak — po endo", Emoji: "🔬"},
				}},
				{ID: "walls", Label: "Ile ścian korony zachowanych?", Options: []QuestionOption{
					{Value: "three_plus", Label: "3–4 ściany", Emoji: "🏰"},
					{Value: "two_less", Label: "1–2 ściany", Emoji: "⚠️"},
				}},
				{ID: "bruxism_o", Label: "Bruksizm?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "😊"},
					{Value: "yes", Label: "Tak", Emoji: "😬"},
				}},
			},
		},
		{
			ID: "crown_vs_composite", CategoryID: "braki",
			Title: "Korona vs odbudowa kompozytowa", Subtitle: "Mocno zniszczony ząb — co wybrać?",
			Icon: "👑", Color: "#38bdf8",
			MethodIDs: []string{"crown_rebuild", "composite_rebuild"},
			Questions: []Question{
				{ID: "destruction", Label: "Jak bardzo zniszczony jest ząb?", Options: []QuestionOption{
					{Value: "moderate", Label: "30–50% korony", Emoji: "🟡"},
					{Value: "severe", Label: ">50% korony", Emoji: "🔴"},
				}},
				{ID: "endo_cr", Label: "Czy był leczony kanałowo?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "💚"},
					{Value: "yes", Label: "Tak", Emoji: "🔬"},
				}},
				{ID: "position_cr", Label: "Który ząb?", Options: []QuestionOption{
					{Value: "front", Label: "Przedni", Emoji: "😁"},
					{Value: "back", Label: "Boczny (trzonowiec/przedtrzonowiec)", Emoji: "🔨"},
				}},
			},
		},

		// Leczenie kanałowe
		{
			ID: "endo_vs_extract", CategoryID: "kanalowe",
			Title: "Endo vs ekstrakcja + implant", Subtitle: "Ratować ząb czy zastąpić?",
			Icon: "⚔️", Color: "#f59e0b",
			MethodIDs: []string{"endo", "extract_implant"},
			Questions: []Question{
				{ID: "tooth_state", Label: "Stan zęba?", Options: []QuestionOption{
					{Value: "restorable", Label: "Da się odbudować", Emoji: "🔧"},
					{Value: "questionable", Label: "Wątpliwe rokowanie", Emoji: "❓"},
					{Value: "hopeless", Label: "Nie nadaje się do ratowania", Emoji: "⚠️"},
				}},
				{ID: "strategic", Label: "Czy ząb jest strategicznie ważny?", Options: []QuestionOption{
					{Value: "yes", Label: "Tak (filar, jedynka, kluczowa pozycja)", Emoji: "⭐"},
					{Value: "no", Label: "Nie koliduje z planem leczenia", Emoji: "👍"},
				}},
				{ID: "time_pref", Label: "Szybkość vs trwałość?", Options: []QuestionOption{
					{Value: "save_time", Label: "Chcę szybciej — 1–3 wizyty", Emoji: "⚡"},
					{Value: "invest", Label: "Inwestuję w trwałość — mogę czekać", Emoji: "🏰"},
				}},
			},
		},
		{
			ID: "retreatment", CategoryID: "kanalowe",
			Title: "Powtórne endo vs resekcja vs ekstrakcja", Subtitle: "Co gdy pierwsze endo nie zadziałało?",
			Icon: "🔁", Color: "#f59e0b",
			MethodIDs: []string{"re_endo", "resection", "extraction_after"},
			Questions: []Question{
				{ID: "previous", Label: "Dlaczego pierwsze endo nie zadziałało?", Options: []QuestionOption{
					{Value: "short", Label: "Krótkie wypełnienie / pominięty kanał", Emoji: "📏"},
					{Value: "leakage", Label: "Nieszczelna odbudowa, wtórna infekcja", Emoji: "💧"},
					{Value: "anatomy", Label: "Trudna anatomia / złamany instrument", Emoji: "🔧"},
				}},
				{ID: "post_present", Label: "Czy w kanale jest wkład koronowy?", Options: []QuestionOption{
					{Value: "no", Label: "Nie — dostęp od góry możliwy", Emoji: "✅"},
					{Value: "yes", Label: "Tak — nie da się usunąć", Emoji: "🔒"},
				}},
				{ID: "symptoms_r", Label: "Objawy?", Options: []QuestionOption{
					{Value: "none", Label: "Brak — zmiana tylko na RTG", Emoji: "📷"},
					{Value: "mild", Label: "Lekki ból, dyskomfort", Emoji: "🟡"},
					{Value: "acute", Label: "Silny ból / obrzęk / ropień", Emoji: "🔴"},
				}},
			},
		},
		{
			ID: "endo_sessions", CategoryID: "kanalowe",
			Title: "Endo: 1 wizyta vs 2 wizyty", Subtitle: "Komfort vs bezpieczeństwo",
			Icon: "📅", Color: "#38bdf8",
			MethodIDs: []string{"endo_1visit", "endo_2visit"},
			Questions: []Question{
				{ID: "diagnosis_e", Label: "Jaka jest diagnoza?", Options: []QuestionOption{
					{Value: "pulpitis", Label: "Zapalenie miazgi (ból na gorące/zimne)", Emoji: "🔥"},
					{Value: "necrosis", Label: "Martwica / zmiana na RTG", Emoji: "📷"},
					{Value: "abscess", Label: "Ropień / obrzęk", Emoji: "🔴"},
				}},
				{ID: "anatomy_e", Label: "Anatomia kanałowa?", Options: []QuestionOption{
					{Value: "simple", Label: "Prosta (1–2 kanały)", Emoji: "📏"},
					{Value: "complex", Label: "Złożona (3+ kanałów, zagięcia)", Emoji: "🔀"},
				}},
				{ID: "preference_e", Label: "Twoja preferencja?", Options: []QuestionOption{
					{Value: "one_done", Label: "Jedno posiedzenie — mam to z głowy", Emoji: "⚡"},
					{Value: "safe", Label: "Wolę dwie krótsze wizyty", Emoji: "🛡️"},
				}},
			},
		},
		{
			ID: "post_endo_rebuild", CategoryID: "kanalowe",
			Title: "Odbudowa po endo", Subtitle: "Wypełnienie vs wkład + korona",
			Icon: "🏗️", Color: "#10b981",
			MethodIDs: []string{"filling_post_endo", "post_crown"},
			Questions: []Question{
				{ID: "tooth_type_pe", Label: "Który ząb?", Options: []QuestionOption{
					{Value: "front", Label: "Przedni (siekacz, kieł)", Emoji: "😁"},
					{Value: "back", Label: "Boczny (przedtrzonowiec, trzonowiec)", Emoji: "🔨"},
				}},
				{ID: "tissue_loss", Label: "Ile tkanek zostało?", Options: []QuestionOption{
					{Value: "plenty", Label: "Dużo — 3–4 ściany", Emoji: "🏰"},
					{Value: "little", Label: "Mało — 1–2 ściany", Emoji: "⚠️"},
				}},
				{ID: "bruxism_pe", Label: "Bruksizm?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "😊"},
					{Value: "yes", Label: "Tak", Emoji: "😬"},
				}},
			},
		},

		// Periodontologia
		{
			ID: "hygiene_methods", CategoryID: "periodontologia",
			Title: "Skaling vs AIRFLOW vs kiretaż", Subtitle: "Co wybrać na kamień i płytkę?",
			Icon: "💨", Color: "#10b981",
			MethodIDs: []string{"scaling", "airflow", "curettage"},
			Questions: []Question{
				{ID: "pockets", Label: "Głębokość kieszonek?", Options: []QuestionOption{
					{Value: "none", Label: "Nie mam kieszonek / nie wiem", Emoji: "❓"},
					{Value: "shallow", Label: "Do 4 mm", Emoji: "🟡"},
					{Value: "deep", Label: ">4 mm", Emoji: "🔴"},
				}},
				{ID: "sensitivity_h", Label: "Wrażliwość dziąseł?", Options: []QuestionOption{
					{Value: "normal", Label: "Normalne", Emoji: "👍"},
					{Value: "sensitive", Label: "Bardzo wrażliwe, krwawią", Emoji: "🩸"},
				}},
				{ID: "implants_h", Label: "Masz implanty lub prace protetyczne?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "❌"},
					{Value: "yes", Label: "Tak", Emoji: "✅"},
				}},
			},
		},
		{
			ID: "gum_treatment", CategoryID: "periodontologia",
			Title: "Leczenie dziąseł — jaki poziom?", Subtitle: "Higienizacja vs kiretaż zamknięty vs otwarty",
			Icon: "🩺", Color: "#10b981",
			MethodIDs: []string{"hygiene_instruct", "curettage_closed", "curettage_open"},
			Questions: []Question{
				{ID: "pockets_g", Label: "Głębokość kieszonek?", Options: []QuestionOption{
					{Value: "up_to_4", Label: "Do 4 mm", Emoji: "🟡"},
					{Value: "4_to_6", Label: "4–6 mm", Emoji: "🟠"},
					{Value: "over_6", Label: ">6 mm", Emoji: "🔴"},
				}},
				{ID: "bone_loss_g", Label: "Utrata kości na RTG?", Options: []QuestionOption{
					{Value: "none", Label: "Brak / minimalna", Emoji: "✅"},
					{Value: "moderate", Label: "Umiarkowana", Emoji: "🟠"},
					{Value: "advanced", Label: "Zaawansowana", Emoji: "🔴"},
				}},
				{ID: "compliance", Label: "Higiena domowa?", Options: []QuestionOption{
					{Value: "good", Label: "Dobra — szczotkuję 2×, nitkuję", Emoji: "⭐"},
					{Value: "average", Label: "Średnia — szczotkuję, ale nie nitkuję", Emoji: "👍"},
				}},
			},
		},
		{
			ID: "sensitivity", CategoryID: "periodontologia",
			Title: "Nadwrażliwość zębów", Subtitle: "Lakier vs laser vs pasta",
			Icon: "❄️", Color: "#06b6d4",
			MethodIDs: []string{"varnish_sensitivity", "laser_sensitivity", "paste_sensitivity"},
			Questions: []Question{
				{ID: "intensity", Label: "Jak silna jest nadwrażliwość?", Options: []QuestionOption{
					{Value: "mild", Label: "Łagodna — czasem przechodzą ciarki", Emoji: "🟡"},
					{Value: "moderate", Label: "Umiarkowana — boli przy zimnym/gorącym", Emoji: "🟠"},
					{Value: "severe", Label: "Silna — boli samoistnie", Emoji: "🔴"},
				}},
				{ID: "cause_s", Label: "Prawdopodobna przyczyna?", Options: []QuestionOption{
					{Value: "recession", Label: "Odsłonięte szyjki zębów", Emoji: "🦷"},
					{Value: "post_scaling", Label: "Po skalingu / wybielaniu", Emoji: "🪥"},
					{Value: "unknown", Label: "Nie wiem", Emoji: "❓"},
				}},
				{ID: "tried_paste", Label: "Próbowałeś pasty na nadwrażliwość?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "❌"},
					{Value: "yes_helped", Label: "Tak, pomogła", Emoji: "✅"},
					{Value: "yes_not", Label: "Tak, nie pomogła", Emoji: "😕"},
				}},
			},
		},

		// Chirurgia
		{
			ID: "extraction_type", CategoryID: "chirurgia",
			Title: "Ekstrakcja: prosta vs chirurgiczna", Subtitle: "Czas gojenia, ryzyko, przygotowanie",
			Icon: "🦷", Color: "#ef4444",
			MethodIDs: []string{"extract_simple", "extract_surgical"},
			Questions: []Question{
				{ID: "tooth_visible", Label: "Czy ząb jest widoczny?", Options: []QuestionOption{
					{Value: "yes", Label: "Tak, wyrżnięty", Emoji: "✅"},
					{Value: "partial", Label: "Częściowo wyrżnięty", Emoji: "🟡"},
					{Value: "no", Label: "Nie — zatrzymany w kości", Emoji: "🔴"},
				}},
				{ID: "roots_ex", Label: "Stan korzeni?", Options: []QuestionOption{
					{Value: "normal", Label: "Proste, jeden korzeń", Emoji: "📏"},
					{Value: "complex", Label: "Zagięte, kruche, wiele korzeni", Emoji: "🔀"},
				}},
				{ID: "inflammation", Label: "Stan zapalny?", Options: []QuestionOption{
					{Value: "no", Label: "Brak", Emoji: "✅"},
					{Value: "yes", Label: "Tak — obrzęk / ropień", Emoji: "🔴"},
				}},
			},
		},
		{
			ID: "wisdom_teeth", CategoryID: "chirurgia",
			Title: "Ósemki: zostawić vs usunąć", Subtitle: "Checklist wskazań i przeciwwskazań",
			Icon: "🦷", Color: "#ef4444",
			MethodIDs: []string{"wisdom_keep", "wisdom_remove"},
			Questions: []Question{
				{ID: "symptoms_w", Label: "Czy ósemka daje objawy?", Options: []QuestionOption{
					{Value: "none", Label: "Nie — spokojnie siedzi", Emoji: "✅"},
					{Value: "occasional", Label: "Czasem boli / puchnie", Emoji: "🟡"},
					{Value: "frequent", Label: "Częste problemy", Emoji: "🔴"},
				}},
				{ID: "position_w", Label: "Pozycja ósemki na RTG?", Options: []QuestionOption{
					{Value: "erupted", Label: "Wyrżnięta, w zwarciu", Emoji: "✅"},
					{Value: "tilted", Label: "Ukośna, napiera na sąsiada", Emoji: "↗️"},
					{Value: "impacted", Label: "Zatrzymana w kości", Emoji: "🔒"},
				}},
				{ID: "caries_w", Label: "Próchnica ósemki lub sąsiada?", Options: []QuestionOption{
					{Value: "no", Label: "Brak", Emoji: "✅"},
					{Value: "yes", Label: "Tak", Emoji: "🔴"},
				}},
			},
		},
		{
			ID: "sinus_lift", CategoryID: "chirurgia",
			Title: "Sinus lift: zamknięty vs otwarty", Subtitle: "Podniesienie dna zatoki przed implantem",
			Icon: "🔼", Color: "#38bdf8",
			MethodIDs: []string{"sinus_closed", "sinus_open"},
			Questions: []Question{
				{ID: "bone_height", Label: "Ile kości resztkowej?", Options: []QuestionOption{
					{Value: "enough", Label: "5–7 mm (brak 1–3 mm)", Emoji: "🟡"},
					{Value: "little", Label: "<5 mm (duży brak)", Emoji: "🔴"},
				}},
				{ID: "implant_plan", Label: "Czy implant jednocześnie?", Options: []QuestionOption{
					{Value: "with", Label: "Tak — implant + sinus w jednej sesji", Emoji: "⚡"},
					{Value: "staged", Label: "Nie — najpierw kość, potem implant", Emoji: "📅"},
				}},
				{ID: "sinus_health", Label: "Stan zatoki?", Options: []QuestionOption{
					{Value: "healthy", Label: "Zdrowa", Emoji: "✅"},
					{Value: "issues", Label: "Polip / przewlekłe zapalenie", Emoji: "⚠️"},
				}},
			},
		},

		// Profilaktyka
		{
			ID: "toothbrush", CategoryID: "profilaktyka",
			Title: "Szczoteczka: manualna vs elektryczna vs soniczna", Subtitle: "Co najlepiej czyści?",
			Icon: "🪥", Color: "#06b6d4",
			MethodIDs: []string{"brush_manual", "brush_electric", "brush_sonic"},
			Questions: []Question{
				{ID: "gums", Label: "Stan dziąseł?", Options: []QuestionOption{
					{Value: "healthy", Label: "Zdrowe", Emoji: "✅"},
					{Value: "sensitive", Label: "Wrażliwe / krwawią", Emoji: "🩸"},
					{Value: "receding", Label: "Recesje", Emoji: "📉"},
				}},
				{ID: "prosthetics", Label: "Masz implanty/mosty/licówki?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "❌"},
					{Value: "yes", Label: "Tak", Emoji: "✅"},
				}},
				{ID: "technique", Label: "Technika szczotkowania?", Options: []QuestionOption{
					{Value: "good", Label: "Opanowana (metoda Bassa)", Emoji: "⭐"},
					{Value: "average", Label: "Średnia / nie wiem", Emoji: "🤷"},
				}},
			},
		},
		{
			ID: "interdental", CategoryID: "profilaktyka",
			Title: "Nić vs szczoteczki vs irygator", Subtitle: "Czyszczenie międzyzębowe — co wybrać?",
			Icon: "🧵", Color: "#06b6d4",
			MethodIDs: []string{"floss", "interdental_brush", "irrigator"},
			Questions: []Question{
				{ID: "spaces", Label: "Przestrzenie między zębami?", Options: []QuestionOption{
					{Value: "tight", Label: "Ciasne", Emoji: "📏"},
					{Value: "normal", Label: "Normalne", Emoji: "👍"},
					{Value: "wide", Label: "Szerokie (po perio, mosty)", Emoji: "↔️"},
				}},
				{ID: "prosthetics_i", Label: "Mosty, implanty, aparat?", Options: []QuestionOption{
					{Value: "no", Label: "Nie", Emoji: "❌"},
					{Value: "yes", Label: "Tak", Emoji: "✅"},
				}},
				{ID: "dexterity", Label: "Zręczność manualna?", Options: []QuestionOption{
					{Value: "good", Label: "Dobra — potrafię nitkować", Emoji: "👍"},
					{Value: "limited", Label: "Ograniczona — nić jest trudna", Emoji: "😅"},
				}},
			},
		},
		{
			ID: "bruxism_guard", CategoryID: "profilaktyka",
			Title: "Bruksizm: szyna vs nic", Subtitle: "Ryzyko starć i pęknięć zębów",
			Icon: "🛡️", Color: "#ef4444",
			MethodIDs: []string{"splint_guard", "no_guard"},
			Questions: []Question{
				{ID: "symptoms_br", Label: "Objawy bruksizmu?", Options: []QuestionOption{
					{Value: "mild", Label: "Lekkie napięcie szczęki rano", Emoji: "🟡"},
					{Value: "moderate", Label: "Starcia widoczne, bóle głowy", Emoji: "🟠"},
					{Value: "severe", Label: "Pęknięcia, silne starcia, ból TMJ", Emoji: "🔴"},
				}},
				{ID: "wear_visible", Label: "Starcia na zębach?", Options: []QuestionOption{
					{Value: "no", Label: "Brak widocznych", Emoji: "✅"},
					{Value: "yes", Label: "Tak", Emoji: "⚠️"},
				}},
				{ID: "willing_br", Label: "Czy będziesz nosić szynę na noc?", Options: []QuestionOption{
					{Value: "yes", Label: "Tak, bez problemu", Emoji: "✅"},
					{Value: "maybe", Label: "Spróbuję", Emoji: "🤔"},
				}},
			},
		},

		// Dzieci
		{
			ID: "sealant_vs_fluoride", CategoryID: "dzieci",
			Title: "Lakowanie vs fluoryzacja vs infiltracja", Subtitle: "Profilaktyka próchnicy u dzieci",
			Icon: "🛡️", Color: "#ec4899",
			MethodIDs: []string{"sealant", "fluoride_varnish", "icon_infiltration"},
			Questions: []Question{
				{ID: "tooth_status", Label: "Stan zęba?", Options: []QuestionOption{
					{Value: "healthy", Label: "Zdrowy, głębokie bruzdy", Emoji: "✅"},
					{Value: "white_spot", Label: "White spot — początek demineralizacji", Emoji: "⚪"},
					{Value: "general", Label: "Ogólna profilaktyka", Emoji: "🛡️"},
				}},
				{ID: "age_child", Label: "Wiek dziecka?", Options: []QuestionOption{
					{Value: "under_6", Label: "Poniżej 6 lat", Emoji: "👶"},
					{Value: "6_12", Label: "6–12 lat", Emoji: "🧒"},
					{Value: "teen", Label: "Nastolatek", Emoji: "🧑"},
				}},
				{ID: "risk_caries", Label: "Ryzyko próchnicy?", Options: []QuestionOption{
					{Value: "low", Label: "Niskie", Emoji: "🟢"},
					{Value: "high", Label: "Wysokie", Emoji: "🔴"},
				}},
			},
		},
		{
			ID: "fluoride_method", CategoryID: "dzieci",
			Title: "Fluoryzacja: gabinetowa vs domowa", Subtitle: "Utrzymanie, częstotliwość, skuteczność",
			Icon: "💧", Color: "#ec4899",
			MethodIDs: []string{"fluoride_office", "fluoride_home"},
			Questions: []Question{
				{ID: "caries_risk_f", Label: "Ryzyko próchnicy?", Options: []QuestionOption{
					{Value: "low", Label: "Niskie", Emoji: "🟢"},
					{Value: "high", Label: "Wysokie (próchnica w rodzinie, słodycze)", Emoji: "🔴"},
				}},
				{ID: "age_f", Label: "Wiek dziecka?", Options: []QuestionOption{
					{Value: "under_3", Label: "Poniżej 3 lat", Emoji: "👶"},
					{Value: "over_3", Label: "3+ lat", Emoji: "🧒"},
				}},
				{ID: "visits_freq", Label: "Jak często możecie przychodzić?", Options: []QuestionOption{
					{Value: "regular", Label: "Co 3–6 mies.", Emoji: "📅"},
					{Value: "rare", Label: "Rzadko", Emoji: "⏳"},
				}},
			},
		},
		{
			ID: "baby_tooth_caries", CategoryID: "dzieci",
			Title: "Próchnica mleczaka", Subtitle: "Wypełnienie vs leczenie miazgi vs ekstrakcja",
			Icon: "🧒", Color: "#ec4899",
			MethodIDs: []string{"baby_filling", "baby_pulpotomy", "baby_extraction"},
			Questions: []Question{
				{ID: "depth", Label: "Głębokość próchnicy?", Options: []QuestionOption{
					{Value: "shallow", Label: "Płytka/średnia — bez miazgi", Emoji: "🟡"},
					{Value: "deep", Label: "Głęboka — blisko lub w miazdze", Emoji: "🟠"},
					{Value: "abscess", Label: "Ropień / przetoka", Emoji: "🔴"},
				}},
				{ID: "exchange", Label: "Kiedy wymiana na stały?", Options: []QuestionOption{
					{Value: "far", Label: ">2 lata", Emoji: "⏳"},
					{Value: "soon", Label: "<1 rok", Emoji: "⚡"},
				}},
				{ID: "cooperation", Label: "Współpraca dziecka?", Options: []QuestionOption{
					{Value: "good", Label: "Dobra — siedzi spokojnie", Emoji: "😊"},
					{Value: "difficult", Label: "Trudna — płacze, nie otwiera", Emoji: "😢"},
				}},
			},
		},
	}
}
