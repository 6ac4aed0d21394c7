package catalog

// cell is a shorthand for table cells that carry no tooltip.
func cell(value string, scale int) TableCell {
	return TableCell{Value: value, Scale: scale}
}

// defaultMethods returns the production treatment registry. The three
// missing_tooth methods carry the full editorial tables; the remaining
// entries use the condensed authoring format.
func defaultMethods() []Method {
	methods := []Method{
		{
			ID:    "implant",
			Label: "Implant",
			Short: "Stałe uzupełnienie bez szlifowania sąsiadów. Najbliższe własnemu zębowi.",
			Icon:  "🔩", Color: "#38bdf8",
			RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time:         TableCell{Value: "3–6 miesięcy", Scale: 2, Tooltip: "Duża część to gojenie tkanek — wizyt jest niewiele, ale osteointegracja wymaga cierpliwości."},
				Visits:       TableCell{Value: "3–5", Scale: 3, Tooltip: "Kwalifikacja, zabieg, kontrole, skan, korona."},
				Durability:   TableCell{Value: "Wysoka", Scale: 5, Tooltip: "Przy dobrej higienie implant może służyć dekady. Korona wymaga ewentualnej wymiany po 10–15 latach."},
				Invasiveness: TableCell{Value: "Średnia", Scale: 3, Tooltip: "Zabieg chirurgiczny pod znieczuleniem, ale nie narusza zębów sąsiednich."},
				Risk:         TableCell{Value: "Średnie", Scale: 3, Tooltip: "Wymaga kwalifikacji, odpowiednich warunków kostnych i okresu gojenia."},
				Hygiene:      TableCell{Value: "Jak własny ząb", Scale: 4, Tooltip: "Nitkowanie i szczoteczki międzyzębowe jak przy naturalnych zębach."},
				Maintenance:  TableCell{Value: "Kontrole 1–2×/rok", Tooltip: "Profilaktyka, ocena tkanek wokół implantu, kontrolne RTG."},
				WorksWhen: []string{
					"Brak 1 zęba i chcesz rozwiązanie stałe",
					"Zależy Ci na ochronie zębów sąsiednich",
					"Masz wystarczające warunki kostne (lub jesteś gotowy na augmentację)",
					"Szukasz rozwiązania najbliższego naturalnemu zębowi",
				},
				NotIdealWhen: []string{
					"Brak warunków kostnych bez możliwości odbudowy",
					"Nieuregulowane stany zapalne (zapalenie dziąseł)",
					"Bruksizm bez zabezpieczenia szyną",
					"Szukasz rozwiązania natychmiastowego",
				},
			},
			Metrics: MethodMetrics{Durability: 90, Speed: 35, MinInvasive: 55, Maintenance: 75, Risk: 70},
		},
		{
			ID:    "bridge",
			Label: "Most protetyczny",
			Short: "Stałe uzupełnienie oparte na zębach sąsiednich — szybsze niż implant.",
			Icon:  "🌉", Color: "#f59e0b",
			RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time:         TableCell{Value: "1–3 tygodnie", Scale: 4, Tooltip: "Zależy od diagnostyki i pracy laboratoryjnej. Znacznie szybciej niż implant."},
				Visits:       TableCell{Value: "2–4", Scale: 4, Tooltip: "Kwalifikacja, preparacja, ewentualna przymiarka, osadzenie."},
				Durability:   TableCell{Value: "Średnio-wysoka", Scale: 4, Tooltip: "Zależna od stanu filarów i higieny. Średnio 10–15 lat."},
				Invasiveness: TableCell{Value: "Wyższa", Scale: 2, Tooltip: "Wymaga opracowania (szlifowania) zębów sąsiednich — nawet jeśli są zdrowe."},
				Risk:         TableCell{Value: "Średnie", Scale: 3, Tooltip: "Ryzyko próchnicy filarów przy słabej higienie. Przeciążenia mechaniczne."},
				Hygiene:      TableCell{Value: "Trudniejsza", Scale: 2, Tooltip: "Wymaga specjalnych nici i wyciorków pod przęsłem mostu."},
				Maintenance:  TableCell{Value: "Regularne kontrole", Tooltip: "Higiena pod przęsłem, kontrola filarów, ewentualne korekty."},
				WorksWhen: []string{
					"Chcesz szybciej niż implant",
					"Zęby filarowe i tak wymagają odbudowy protetycznej (po endo, rozległe ubytki)",
					"Warunki do implantu ograniczone",
					"Brak 1–2 zębów w jednym odcinku",
				},
				NotIdealWhen: []string{
					"Zęby sąsiednie są zupełnie zdrowe — szkoda je szlifować",
					"Trudność z utrzymaniem higieny pod mostem",
					"Brakuje wielu zębów — most wymaga mocnych filarów",
					"Priorytetem jest maksymalna ochrona tkanki własnej",
				},
			},
			Metrics: MethodMetrics{Durability: 75, Speed: 80, MinInvasive: 35, Maintenance: 45, Risk: 65},
		},
		{
			ID:    "partial_denture",
			Label: "Proteza częściowa",
			Short: "Najszybsza opcja bez zabiegów chirurgicznych — wyjmowana.",
			Icon:  "🔄", Color: "#10b981",
			RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time:         TableCell{Value: "1–2 tygodnie", Scale: 5, Tooltip: "Zwykle kilka wizyt + wykonanie w laboratorium. Najszybsza ścieżka."},
				Visits:       TableCell{Value: "2–4", Scale: 4, Tooltip: "Wyciski/skany, przymiarki, oddanie protezy."},
				Durability:   TableCell{Value: "Średnia", Scale: 3, Tooltip: "Zużywa się i wymaga okresowych dopasowań. Średnio 5–8 lat."},
				Invasiveness: TableCell{Value: "Niska", Scale: 5, Tooltip: "Najmniej zabiegowa opcja — żadnych cięć, żadnego szlifowania."},
				Risk:         TableCell{Value: "Niskie", Scale: 4, Tooltip: "Może wpływać na komfort żucia i przyzwyczajenie. Wymaga adaptacji."},
				Hygiene:      TableCell{Value: "Wymaga rutyny", Scale: 3, Tooltip: "Czyszczenie protezy po posiłkach + higiena jamy ustnej. Nie śpi się w protezie."},
				Maintenance:  TableCell{Value: "Dopasowania wg potrzeb", Tooltip: "Możliwe podścielenia, korekty, wymiana zębów w protezie."},
				WorksWhen: []string{
					"Brakuje kilku zębów i szukasz szybkiego rozwiązania",
					"Nie chcesz zabiegów chirurgicznych",
					"Opcja przejściowa w planie długofalowym (np. przed implantami)",
					"Ograniczenia zdrowotne wykluczające zabiegi",
				},
				NotIdealWhen: []string{
					"Priorytetem jest maksymalny komfort i stałość",
					"Wysokie wymagania estetyczne w strefie uśmiechu",
					"Nie akceptujesz protezy wyjmowanej",
					"Brak 1 zęba — zwykle wygodniejszy implant lub most",
				},
			},
			Metrics: MethodMetrics{Durability: 55, Speed: 85, MinInvasive: 95, Maintenance: 60, Risk: 75},
		},
	}
	methods = append(methods, condensedMethods()...)
	return methods
}

// condensedMethods holds the rest of the registry in the short authoring
// format: metrics plus a compact table without per-cell tooltips.
func condensedMethods() []Method {
	return []Method{
		// Metamorfoza uśmiechu
		{
			ID: "whitening", Label: "Wybielanie", Short: "Rozjaśnienie koloru bez ingerencji w strukturę zęba.",
			Icon: "🎨", Color: "#f59e0b", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–2 tygodnie", 5), Visits: cell("1–2", 5), Durability: cell("Rok–dwa", 2),
				Invasiveness: cell("Minimalna", 5), Risk: cell("Niskie", 5), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Dotykowe wybielanie co 1–2 lata", 0),
				WorksWhen:   []string{"Problemem jest wyłącznie kolor", "Zęby są zdrowe, bez rozległych wypełnień w strefie uśmiechu"},
				NotIdealWhen: []string{"Chcesz zmienić kształt lub proporcje", "Przebarwienia pozabiegowe (np. po endo) — wymagają innej metody"},
			},
			Metrics: MethodMetrics{Durability: 30, Speed: 95, MinInvasive: 98, Maintenance: 60, Risk: 92},
		},
		{
			ID: "bonding_smile", Label: "Bonding kompozytowy", Short: "Bezpośrednia korekta kompozytem — szybka i zachowawcza.",
			Icon: "🖌️", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 dzień – 2 tyg.", 5), Visits: cell("1–3", 5), Durability: cell("Średnia", 3),
				Invasiveness: cell("Bardzo niska", 5), Risk: cell("Niskie", 5), Hygiene: cell("Łatwa", 5),
				Maintenance: cell("Polerowanie 1–2×/rok", 0),
				WorksWhen:   []string{"Drobne korekty kształtu i ukruszenia", "Chcesz efekt bez szlifowania"},
				NotIdealWhen: []string{"Bruksizm bez szyny", "Pełna metamorfoza całego łuku"},
			},
			Metrics: MethodMetrics{Durability: 45, Speed: 95, MinInvasive: 95, Maintenance: 70, Risk: 90},
		},
		{
			ID: "veneer_porc_smile", Label: "Licówki porcelanowe", Short: "Premium: trwałe, niebarwiące się — złoty standard estetyki.",
			Icon: "💎", Color: "#a855f7", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 3), Visits: cell("2–4", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Średnia", 3), Risk: cell("Średnie", 3), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Pełna metamorfoza 8–10 zębów", "Duża zmiana koloru i kształtu na lata"},
				NotIdealWhen: []string{"Nie akceptujesz nieodwracalnego szlifowania", "Korekta 1–2 zębów — bonding może wystarczyć"},
			},
			Metrics: MethodMetrics{Durability: 88, Speed: 55, MinInvasive: 50, Maintenance: 78, Risk: 60},
		},
		{
			ID: "crown_smile", Label: "Korony pełnoceramiczne", Short: "Pełne pokrycie — gdy zęby wymagają też wzmocnienia.",
			Icon: "👑", Color: "#38bdf8", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("1–3 tygodnie", 4), Visits: cell("2–3", 4), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Wysoka", 1), Risk: cell("Średnie", 3), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Zęby mocno zniszczone lub po endo", "Bruksizm — ceramika chroni strukturę"},
				NotIdealWhen: []string{"Zęby zdrowe — licówka lub bonding mniej inwazyjne", "Chcesz zachować maksimum własnej tkanki"},
			},
			Metrics: MethodMetrics{Durability: 85, Speed: 70, MinInvasive: 20, Maintenance: 75, Risk: 55},
		},

		// Licówki: kompozyt vs porcelana
		{
			ID: "veneer_comp_type", Label: "Licówki kompozytowe", Short: "Cienkie pokrycia z kompozytu — kompromis między bondingiem a porcelaną.",
			Icon: "🪞", Color: "#f59e0b", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–7 dni", 4), Visits: cell("1–2", 4), Durability: cell("Średnia", 3),
				Invasiveness: cell("Niska", 4), Risk: cell("Niskie", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Polerowanie 1–2×/rok", 0),
				WorksWhen:   []string{"Efekt w 1–2 wizytach bez laboratorium", "Mniejsze szlifowanie niż porcelana"},
				NotIdealWhen: []string{"Oczekujesz efektu 10+ lat bez serwisu", "Bruksizm — kompozyt mniej odporny na ścieranie"},
			},
			Metrics: MethodMetrics{Durability: 50, Speed: 85, MinInvasive: 80, Maintenance: 65, Risk: 82},
		},
		{
			ID: "veneer_porc_type", Label: "Licówki porcelanowe", Short: "Trwały, niebarwiący się efekt — wymaga etapu laboratoryjnego.",
			Icon: "💎", Color: "#a855f7", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 3), Visits: cell("2–4", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Średnia", 3), Risk: cell("Średnie", 3), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Trwałość i stabilny kolor na lata", "Większy zakres (4–10 zębów)"},
				NotIdealWhen: []string{"Zależy Ci na czasie i odwracalności", "Ograniczony budżet"},
			},
			Metrics: MethodMetrics{Durability: 88, Speed: 55, MinInvasive: 50, Maintenance: 78, Risk: 60},
		},

		// Bonding: punktowy vs full arch
		{
			ID: "bonding_spot", Label: "Bonding punktowy", Short: "Korekta 1–2 zębów w jednej wizycie.",
			Icon: "🖌️", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 dzień", 5), Visits: cell("1", 5), Durability: cell("Średnia", 3),
				Invasiveness: cell("Minimalna", 5), Risk: cell("Niskie", 5), Hygiene: cell("Łatwa", 5),
				Maintenance: cell("Polerowanie 1–2×/rok", 0),
				WorksWhen:   []string{"Pojedyncze ukruszenie lub mała diastema", "Szybka naprawa bez planu pełnej metamorfozy"},
				NotIdealWhen: []string{"Korekta dotyczy 4+ zębów", "Oczekujesz jednolitego efektu całego łuku"},
			},
			Metrics: MethodMetrics{Durability: 45, Speed: 98, MinInvasive: 96, Maintenance: 70, Risk: 90},
		},
		{
			ID: "bonding_full", Label: "Bonding full arch", Short: "Kompozytowa korekta 6–10 zębów w planowanej sesji.",
			Icon: "😁", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–3 tygodnie", 4), Visits: cell("2–3", 4), Durability: cell("Średnia", 3),
				Invasiveness: cell("Bardzo niska", 5), Risk: cell("Niskie", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Polerowanie 1–2×/rok", 0),
				WorksWhen:   []string{"Zmiana kształtu całej strefy uśmiechu bez szlifowania", "Chcesz przetestować docelowy kształt przed porcelaną"},
				NotIdealWhen: []string{"Bruksizm bez szyny", "Oczekujesz zerowego serwisu przez dekadę"},
			},
			Metrics: MethodMetrics{Durability: 48, Speed: 80, MinInvasive: 92, Maintenance: 62, Risk: 85},
		},

		// Prostowanie vs maskowanie
		{
			ID: "aligners", Label: "Alignery (ortodoncja)", Short: "Prostowanie nakładkami — leczy przyczynę, wymaga miesięcy.",
			Icon: "🎯", Color: "#06b6d4", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("6–18 miesięcy", 1), Visits: cell("5–10", 2), Durability: cell("Trwały efekt z retencją", 5),
				Invasiveness: cell("Zerowa ingerencja w szkliwo", 5), Risk: cell("Niskie", 4), Hygiene: cell("Łatwa (nakładki zdejmowane)", 4),
				Maintenance: cell("Retainer po leczeniu", 0),
				WorksWhen:   []string{"Stłoczenia i rotacje — problem jest w ustawieniu zębów", "Chcesz wyleczyć przyczynę, nie zamaskować efekt"},
				NotIdealWhen: []string{"Oczekujesz efektu w tygodnie", "Nie będziesz nosić nakładek 20+ godzin dziennie"},
			},
			Metrics: MethodMetrics{Durability: 92, Speed: 15, MinInvasive: 90, Maintenance: 70, Risk: 85},
		},
		{
			ID: "bonding_mask", Label: "Maskowanie bondingiem", Short: "Szybka zmiana wyglądu bez ruszania zębów.",
			Icon: "🎭", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("Dni–tygodnie", 5), Visits: cell("1–3", 5), Durability: cell("Średnia", 3),
				Invasiveness: cell("Bardzo niska", 5), Risk: cell("Niskie", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Polerowanie 1–2×/rok", 0),
				WorksWhen:   []string{"Niewielkie przerwy i nierówności", "Efekt potrzebny szybko (ślub, sesja)"},
				NotIdealWhen: []string{"Duże stłoczenia — kompozyt ich nie ukryje", "Chcesz rozwiązać przyczynę wady"},
			},
			Metrics: MethodMetrics{Durability: 45, Speed: 95, MinInvasive: 92, Maintenance: 65, Risk: 85},
		},

		// Diastema
		{
			ID: "bonding_dia", Label: "Bonding diastemy", Short: "Zamknięcie przerwy kompozytem w jedną wizytę.",
			Icon: "🖌️", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 dzień", 5), Visits: cell("1", 5), Durability: cell("Średnia", 3),
				Invasiveness: cell("Minimalna", 5), Risk: cell("Niskie", 5), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Polerowanie 1–2×/rok", 0),
				WorksWhen:   []string{"Mała lub średnia diastema", "Chcesz natychmiastowy, odwracalny efekt"},
				NotIdealWhen: []string{"Przerwa >3 mm — proporcje mogą wyglądać nienaturalnie", "Towarzyszą inne wady zgryzu"},
			},
			Metrics: MethodMetrics{Durability: 45, Speed: 98, MinInvasive: 95, Maintenance: 68, Risk: 90},
		},
		{
			ID: "ortho_dia", Label: "Ortodoncja", Short: "Domknięcie przerwy ruchem zębów — efekt przyczynowy.",
			Icon: "🎯", Color: "#06b6d4", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("4–12 miesięcy", 1), Visits: cell("4–8", 2), Durability: cell("Trwały z retencją", 5),
				Invasiveness: cell("Zerowa ingerencja w szkliwo", 5), Risk: cell("Niskie", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Retainer po leczeniu", 0),
				WorksWhen:   []string{"Duża diastema lub dodatkowe nierówności", "Zależy Ci na naturalnych proporcjach zębów"},
				NotIdealWhen: []string{"Oczekujesz efektu od razu", "Nie zaakceptujesz retencji po leczeniu"},
			},
			Metrics: MethodMetrics{Durability: 90, Speed: 20, MinInvasive: 90, Maintenance: 72, Risk: 85},
		},
		{
			ID: "veneer_dia", Label: "Licówki", Short: "Zamknięcie przerwy i korekta kształtu jednocześnie.",
			Icon: "💎", Color: "#a855f7", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 3), Visits: cell("2–4", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Średnia", 3), Risk: cell("Średnie", 3), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Diastema plus zmiana koloru/kształtu", "Trwały efekt estetyczny na lata"},
				NotIdealWhen: []string{"Problem jest czysto ortodontyczny", "Nie akceptujesz szlifowania"},
			},
			Metrics: MethodMetrics{Durability: 85, Speed: 55, MinInvasive: 50, Maintenance: 75, Risk: 62},
		},

		// Starcia / bruksizm
		{
			ID: "splint_rebuild", Label: "Szyna + odbudowy kompozytowe", Short: "Ochrona szyną i zachowawcza odbudowa startych brzegów.",
			Icon: "🛡️", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 4), Visits: cell("2–4", 4), Durability: cell("Średnia", 3),
				Invasiveness: cell("Niska", 5), Risk: cell("Niskie", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrola szyny i odbudów 1–2×/rok", 0),
				WorksWhen:   []string{"Wczesne i umiarkowane starcia", "Chcesz zatrzymać proces zachowawczo"},
				NotIdealWhen: []string{"Zaawansowana utrata tkanek", "Nie będziesz nosić szyny"},
			},
			Metrics: MethodMetrics{Durability: 55, Speed: 80, MinInvasive: 90, Maintenance: 60, Risk: 85},
		},
		{
			ID: "veneer_brux", Label: "Licówki ceramiczne", Short: "Odbudowa estetyki przy starciach — wymaga ochrony szyną.",
			Icon: "💎", Color: "#a855f7", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 3), Visits: cell("2–4", 3), Durability: cell("Wysoka przy szynie", 4),
				Invasiveness: cell("Średnia", 3), Risk: cell("Średnie", 3), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Szyna nocna + kontrole", 0),
				WorksWhen:   []string{"Starcia w strefie uśmiechu", "Akceptujesz szynę nocną"},
				NotIdealWhen: []string{"Silny bruksizm bez ochrony", "Starcia obejmują zęby boczne"},
			},
			Metrics: MethodMetrics{Durability: 78, Speed: 55, MinInvasive: 55, Maintenance: 70, Risk: 58},
		},
		{
			ID: "crown_brux", Label: "Korony pełnoceramiczne", Short: "Pełne pokrycie przy zaawansowanych starciach.",
			Icon: "👑", Color: "#38bdf8", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("2–6 tygodni", 3), Visits: cell("3–5", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Wysoka", 1), Risk: cell("Średnie", 3), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Szyna nocna + kontrole", 0),
				WorksWhen:   []string{"Zaawansowana utrata tkanek", "Potrzebne podniesienie zwarcia"},
				NotIdealWhen: []string{"Starcia wczesne — wystarczy szyna i bonding", "Chcesz zachować maksimum tkanek"},
			},
			Metrics: MethodMetrics{Durability: 88, Speed: 50, MinInvasive: 20, Maintenance: 72, Risk: 55},
		},

		// Implant: natychmiastowy vs odroczony
		{
			ID: "implant_immediate", Label: "Implant natychmiastowy", Short: "Wszczepienie od razu po ekstrakcji — jedna procedura chirurgiczna.",
			Icon: "⚡", Color: "#38bdf8", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("3–4 miesiące łącznie", 3), Visits: cell("3–4", 4), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Średnia", 3), Risk: cell("Wyższe niż odroczony", 2), Hygiene: cell("Jak własny ząb", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Ząb spokojny, bez infekcji", "Dobre warunki kostne"},
				NotIdealWhen: []string{"Aktywna infekcja lub ropień", "Deficyt kości wymagający augmentacji"},
			},
			Metrics: MethodMetrics{Durability: 88, Speed: 70, MinInvasive: 60, Maintenance: 75, Risk: 55},
		},
		{
			ID: "implant_delayed", Label: "Implant odroczony", Short: "Wszczepienie po wygojeniu zębodołu — przewidywalna ścieżka.",
			Icon: "📅", Color: "#38bdf8", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("4–9 miesięcy łącznie", 1), Visits: cell("4–6", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Średnia (dwa zabiegi)", 3), Risk: cell("Niższe", 4), Hygiene: cell("Jak własny ząb", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Przebyta infekcja lub niepewna kość", "Priorytetem jest przewidywalność"},
				NotIdealWhen: []string{"Zależy Ci na najkrótszym czasie całkowitym", "Strefa estetyczna wymaga natychmiastowej tymczasówki"},
			},
			Metrics: MethodMetrics{Durability: 90, Speed: 30, MinInvasive: 55, Maintenance: 75, Risk: 75},
		},

		// Uzupełnienie stałe (bridge_types uses implant + these two)
		{
			ID: "bridge_on_teeth", Label: "Most na zębach", Short: "Most oparty na oszlifowanych zębach filarowych.",
			Icon: "🌉", Color: "#f59e0b", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("1–3 tygodnie", 4), Visits: cell("2–4", 4), Durability: cell("Średnio-wysoka", 4),
				Invasiveness: cell("Wyższa", 2), Risk: cell("Średnie", 3), Hygiene: cell("Trudniejsza", 2),
				Maintenance: cell("Regularne kontrole filarów", 0),
				WorksWhen:   []string{"Filary i tak wymagają koron", "Brak warunków do implantów"},
				NotIdealWhen: []string{"Filary są zdrowe", "Brakuje 4+ zębów obok siebie"},
			},
			Metrics: MethodMetrics{Durability: 75, Speed: 80, MinInvasive: 35, Maintenance: 45, Risk: 65},
		},
		{
			ID: "bridge_on_implants", Label: "Most na implantach", Short: "Stałe uzupełnienie wielu zębów bez szlifowania własnych.",
			Icon: "🔩", Color: "#38bdf8", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("3–6 miesięcy", 2), Visits: cell("4–6", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Średnia (chirurgia)", 3), Risk: cell("Średnie", 3), Hygiene: cell("Wymaga wyciorków", 3),
				Maintenance: cell("Kontrole 1–2×/rok + RTG", 0),
				WorksWhen:   []string{"Brak 3+ zębów w jednym odcinku", "Sąsiednie zęby są zdrowe"},
				NotIdealWhen: []string{"Deficyt kości bez augmentacji", "Wykluczone zabiegi chirurgiczne"},
			},
			Metrics: MethodMetrics{Durability: 90, Speed: 35, MinInvasive: 50, Maintenance: 70, Risk: 65},
		},

		// Protezy częściowe
		{
			ID: "denture_acrylic", Label: "Proteza akrylowa", Short: "Najprostsza i najtańsza — dobra tymczasowo.",
			Icon: "⚙️", Color: "#10b981", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("1–2 tygodnie", 5), Visits: cell("2–4", 4), Durability: cell("Niska-średnia", 2),
				Invasiveness: cell("Zerowa", 5), Risk: cell("Niskie", 4), Hygiene: cell("Wymaga rutyny", 3),
				Maintenance: cell("Podścielenia wg potrzeb", 0),
				WorksWhen:   []string{"Rozwiązanie tymczasowe przed implantami", "Ograniczony budżet"},
				NotIdealWhen: []string{"Estetyka krytyczna — klamry widoczne", "Docelowe rozwiązanie na lata"},
			},
			Metrics: MethodMetrics{Durability: 40, Speed: 90, MinInvasive: 95, Maintenance: 55, Risk: 75},
		},
		{
			ID: "denture_skeletal", Label: "Proteza szkieletowa", Short: "Metalowy szkielet — stabilniejsza i trwalsza od akrylowej.",
			Icon: "🦴", Color: "#10b981", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("2–3 tygodnie", 4), Visits: cell("3–5", 3), Durability: cell("Średnia", 3),
				Invasiveness: cell("Zerowa", 5), Risk: cell("Niskie", 4), Hygiene: cell("Wymaga rutyny", 3),
				Maintenance: cell("Kontrole i korekty", 0),
				WorksWhen:   []string{"Proteza docelowa na dłużej", "Zależy Ci na stabilności przy żuciu"},
				NotIdealWhen: []string{"Widoczne metalowe klamry są nieakceptowalne", "Plan przejściowy przed implantami"},
			},
			Metrics: MethodMetrics{Durability: 60, Speed: 75, MinInvasive: 92, Maintenance: 62, Risk: 75},
		},
		{
			ID: "denture_flexible", Label: "Proteza elastyczna", Short: "Bez metalowych klamer — najlepsza estetyka wśród protez.",
			Icon: "💎", Color: "#10b981", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("2–3 tygodnie", 4), Visits: cell("3–4", 4), Durability: cell("Średnia", 3),
				Invasiveness: cell("Zerowa", 5), Risk: cell("Niskie", 4), Hygiene: cell("Wymaga rutyny", 3),
				Maintenance: cell("Kontrole, trudniejsze podścielenie", 0),
				WorksWhen:   []string{"Estetyka jest priorytetem", "Alergia na akryl lub metal"},
				NotIdealWhen: []string{"Duże braki wymagające sztywnego oparcia", "Plan przejściowy — cena wyższa niż akryl"},
			},
			Metrics: MethodMetrics{Durability: 55, Speed: 75, MinInvasive: 93, Maintenance: 58, Risk: 76},
		},

		// Bezzębie
		{
			ID: "full_denture", Label: "Proteza całkowita", Short: "Klasyczne rozwiązanie bezzębia — bez chirurgii.",
			Icon: "🔄", Color: "#10b981", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 4), Visits: cell("4–6", 3), Durability: cell("Średnia", 3),
				Invasiveness: cell("Zerowa", 5), Risk: cell("Niskie", 4), Hygiene: cell("Codzienne czyszczenie protezy", 3),
				Maintenance: cell("Podścielenia co 2–3 lata", 0),
				WorksWhen:   []string{"Wykluczone zabiegi chirurgiczne", "Górna szczęka — lepsze ssanie protezy"},
				NotIdealWhen: []string{"Dolna proteza luźna przy jedzeniu", "Oczekujesz pełnego komfortu żucia"},
			},
			Metrics: MethodMetrics{Durability: 50, Speed: 85, MinInvasive: 95, Maintenance: 55, Risk: 80},
		},
		{
			ID: "overdenture", Label: "Overdenture na implantach", Short: "Proteza zatrzaskiwana na 2–4 implantach — stabilność nieporównywalna.",
			Icon: "🔩", Color: "#38bdf8", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("3–6 miesięcy", 2), Visits: cell("5–8", 2), Durability: cell("Wysoka", 4),
				Invasiveness: cell("Średnia (chirurgia)", 3), Risk: cell("Średnie", 3), Hygiene: cell("Proteza + higiena implantów", 3),
				Maintenance: cell("Wymiana zatrzasków co 1–2 lata", 0),
				WorksWhen:   []string{"Luźna proteza dolna", "Chcesz jeść i mówić bez obaw"},
				NotIdealWhen: []string{"Wykluczona chirurgia", "Deficyt kości bez augmentacji"},
			},
			Metrics: MethodMetrics{Durability: 82, Speed: 35, MinInvasive: 55, Maintenance: 60, Risk: 68},
		},

		// Onlay vs korona, korona vs kompozyt
		{
			ID: "onlay", Label: "Onlay ceramiczny", Short: "Częściowe pokrycie — oszczędza zdrowe tkanki zęba.",
			Icon: "🧩", Color: "#10b981", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("1–2 tygodnie", 4), Visits: cell("2", 4), Durability: cell("Wysoka", 4),
				Invasiveness: cell("Umiarkowana", 4), Risk: cell("Niskie", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Zachowane 3–4 ściany zęba", "Ząb żywy — minimalna preparacja"},
				NotIdealWhen: []string{"Ząb po endo z dużą utratą tkanek", "Silny bruksizm"},
			},
			Metrics: MethodMetrics{Durability: 80, Speed: 75, MinInvasive: 72, Maintenance: 72, Risk: 74},
		},
		{
			ID: "crown_rebuild", Label: "Korona protetyczna", Short: "Pełne pokrycie zęba — gdy trzeba odbudować i wzmocnić strukturę.",
			Icon: "👑", Color: "#38bdf8", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("5–14 dni", 4), Visits: cell("2–3", 4), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Wysoka", 1), Risk: cell("Średnie", 3), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Ząb mocno zniszczony lub po endo", "Potrzebna pełna ochrona przed pęknięciem"},
				NotIdealWhen: []string{"Zniszczenie umiarkowane — onlay lub kompozyt wystarczy", "Chcesz zachować maksimum tkanek"},
			},
			Metrics: MethodMetrics{Durability: 85, Speed: 70, MinInvasive: 20, Maintenance: 75, Risk: 55},
		},
		{
			ID: "composite_rebuild", Label: "Odbudowa kompozytowa", Short: "Bezpośrednia odbudowa w jednej wizycie — zachowawczo.",
			Icon: "🖌️", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("Średnia", 3),
				Invasiveness: cell("Niska", 5), Risk: cell("Niskie przy małych ubytkach", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrola szczelności 1×/rok", 0),
				WorksWhen:   []string{"Zniszczenie 30–50% korony", "Ząb żywy, przedni"},
				NotIdealWhen: []string{"Ząb boczny po endo", "Utrata ponad połowy korony"},
			},
			Metrics: MethodMetrics{Durability: 50, Speed: 95, MinInvasive: 88, Maintenance: 60, Risk: 72},
		},

		// Endo vs ekstrakcja
		{
			ID: "endo", Label: "Leczenie kanałowe", Short: "Ratowanie własnego zęba pod mikroskopem.",
			Icon: "🔬", Color: "#f59e0b", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–3 tygodnie", 4), Visits: cell("1–3", 4), Durability: cell("Wysoka z odbudową", 4),
				Invasiveness: cell("Dotyczy tylko leczonego zęba", 4), Risk: cell("Średnie", 3), Hygiene: cell("Jak własny ząb", 5),
				Maintenance: cell("RTG kontrolne po 6–12 mies.", 0),
				WorksWhen:   []string{"Ząb da się odbudować", "Ząb strategicznie ważny w łuku"},
				NotIdealWhen: []string{"Rokowanie beznadziejne", "Pionowe pęknięcie korzenia"},
			},
			Metrics: MethodMetrics{Durability: 78, Speed: 75, MinInvasive: 80, Maintenance: 70, Risk: 65},
		},
		{
			ID: "extract_implant", Label: "Ekstrakcja + implant", Short: "Usunięcie zęba i wszczepienie implantu.",
			Icon: "🔩", Color: "#38bdf8", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("3–6 miesięcy", 2), Visits: cell("4–6", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Chirurgiczna", 2), Risk: cell("Średnie", 3), Hygiene: cell("Jak własny ząb", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Ząb nie rokuje", "Inwestujesz w rozwiązanie na dekady"},
				NotIdealWhen: []string{"Ząb da się wyleczyć kanałowo", "Wykluczona chirurgia"},
			},
			Metrics: MethodMetrics{Durability: 90, Speed: 30, MinInvasive: 40, Maintenance: 75, Risk: 62},
		},

		// Powtórne endo
		{
			ID: "re_endo", Label: "Powtórne leczenie kanałowe", Short: "Rewizja kanałów pod mikroskopem — druga szansa dla zęba.",
			Icon: "🔁", Color: "#f59e0b", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 3), Visits: cell("2–3", 3), Durability: cell("Dobra przy szczelnej odbudowie", 4),
				Invasiveness: cell("Dotyczy leczonego zęba", 4), Risk: cell("Średnie", 3), Hygiene: cell("Jak własny ząb", 5),
				Maintenance: cell("RTG kontrolne", 0),
				WorksWhen:   []string{"Dostęp od góry możliwy", "Przyczyną było krótkie wypełnienie lub pominięty kanał"},
				NotIdealWhen: []string{"Wkład koronowy nie do usunięcia", "Pęknięcie korzenia"},
			},
			Metrics: MethodMetrics{Durability: 72, Speed: 65, MinInvasive: 78, Maintenance: 68, Risk: 60},
		},
		{
			ID: "resection", Label: "Resekcja wierzchołka", Short: "Chirurgiczne usunięcie zmiany przy wierzchołku korzenia.",
			Icon: "🔪", Color: "#ef4444", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("1–2 tygodnie", 4), Visits: cell("2–3", 4), Durability: cell("Dobra", 3),
				Invasiveness: cell("Chirurgiczna", 2), Risk: cell("Średnie", 3), Hygiene: cell("Jak własny ząb", 4),
				Maintenance: cell("RTG kontrolne po 6–12 mies.", 0),
				WorksWhen:   []string{"Wkład w kanale blokuje rewizję od góry", "Zmiana ograniczona do wierzchołka"},
				NotIdealWhen: []string{"Możliwa klasyczna rewizja", "Rozległa utrata kości wokół korzenia"},
			},
			Metrics: MethodMetrics{Durability: 65, Speed: 70, MinInvasive: 45, Maintenance: 65, Risk: 58},
		},
		{
			ID: "extraction_after", Label: "Ekstrakcja", Short: "Usunięcie zęba, gdy leczenie nie rokuje — z planem uzupełnienia.",
			Icon: "🦷", Color: "#ef4444", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1–2", 5), Durability: cell("n/d — wymaga uzupełnienia", 1),
				Invasiveness: cell("Nieodwracalna", 1), Risk: cell("Niskie zabiegowe", 4), Hygiene: cell("Standardowa", 4),
				Maintenance: cell("Plan uzupełnienia braku", 0),
				WorksWhen:   []string{"Ostre objawy i brak rokowania", "Kolejne ratowanie nie ma uzasadnienia"},
				NotIdealWhen: []string{"Ząb da się jeszcze wyleczyć", "Brak planu na uzupełnienie braku"},
			},
			Metrics: MethodMetrics{Durability: 20, Speed: 95, MinInvasive: 25, Maintenance: 50, Risk: 70},
		},

		// Endo 1 vs 2 wizyty
		{
			ID: "endo_1visit", Label: "Endo w 1 wizytę", Short: "Całe leczenie w jednym posiedzeniu.",
			Icon: "⚡", Color: "#38bdf8", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 dzień", 5), Visits: cell("1", 5), Durability: cell("Równa endo 2-wizytowemu", 4),
				Invasiveness: cell("Standard endo", 4), Risk: cell("Niskie przy żywej miazdze", 4), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("RTG kontrolne", 0),
				WorksWhen:   []string{"Zapalenie miazgi, prosta anatomia", "Chcesz mieć leczenie z głowy"},
				NotIdealWhen: []string{"Ropień — potrzebna wkładka dezynfekująca", "Złożona anatomia kanałów"},
			},
			Metrics: MethodMetrics{Durability: 75, Speed: 95, MinInvasive: 80, Maintenance: 70, Risk: 68},
		},
		{
			ID: "endo_2visit", Label: "Endo w 2 wizyty", Short: "Dezynfekcja z wkładką między wizytami — bezpieczniej przy infekcji.",
			Icon: "🛡️", Color: "#38bdf8", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–2 tygodnie", 4), Visits: cell("2", 4), Durability: cell("Wysoka", 4),
				Invasiveness: cell("Standard endo", 4), Risk: cell("Niższe przy infekcji", 4), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("RTG kontrolne", 0),
				WorksWhen:   []string{"Martwica, ropień, obrzęk", "Złożona anatomia"},
				NotIdealWhen: []string{"Prosty przypadek z żywą miazgą", "Trudność z drugą wizytą"},
			},
			Metrics: MethodMetrics{Durability: 78, Speed: 70, MinInvasive: 80, Maintenance: 70, Risk: 75},
		},

		// Odbudowa po endo
		{
			ID: "filling_post_endo", Label: "Wypełnienie kompozytowe", Short: "Zachowawcza odbudowa po endo — dla zębów z dużą ilością tkanek.",
			Icon: "🖌️", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("Dobra w zębach przednich", 3),
				Invasiveness: cell("Minimalna", 5), Risk: cell("Ryzyko pęknięcia w bocznych", 3), Hygiene: cell("Jak własny ząb", 5),
				Maintenance: cell("Kontrola szczelności", 0),
				WorksWhen:   []string{"Ząb przedni z 3–4 ścianami", "Minimalna utrata tkanek"},
				NotIdealWhen: []string{"Trzonowiec po endo", "Bruksizm"},
			},
			Metrics: MethodMetrics{Durability: 55, Speed: 95, MinInvasive: 90, Maintenance: 65, Risk: 60},
		},
		{
			ID: "post_crown", Label: "Wkład + korona", Short: "Odbudowa na wkładzie z pełnym pokryciem — ochrona przed pęknięciem.",
			Icon: "👑", Color: "#38bdf8", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("2–3 tygodnie", 3), Visits: cell("2–4", 3), Durability: cell("Wysoka", 5),
				Invasiveness: cell("Wyższa", 2), Risk: cell("Niskie przy poprawnym endo", 4), Hygiene: cell("Łatwa", 4),
				Maintenance: cell("Kontrole 1–2×/rok", 0),
				WorksWhen:   []string{"Ząb boczny po endo", "Mało zachowanych tkanek"},
				NotIdealWhen: []string{"Przedni ząb z minimalnym ubytkiem", "Budżet na etapową odbudowę"},
			},
			Metrics: MethodMetrics{Durability: 85, Speed: 60, MinInvasive: 35, Maintenance: 75, Risk: 72},
		},

		// Higienizacja
		{
			ID: "scaling", Label: "Skaling ultradźwiękowy", Short: "Usunięcie kamienia nazębnego ultradźwiękami.",
			Icon: "🦷", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("Efekt do nawrotu kamienia", 3),
				Invasiveness: cell("Nieinwazyjny", 5), Risk: cell("Przejściowa nadwrażliwość", 4), Hygiene: cell("Ułatwia codzienną higienę", 5),
				Maintenance: cell("Powtórka co 6 mies.", 0),
				WorksWhen:   []string{"Kamień nazębny nad- i poddziąsłowy", "Podstawa każdej higienizacji"},
				NotIdealWhen: []string{"Głębokie kieszonki — potrzebny kiretaż", "Bardzo wrażliwe dziąsła"},
			},
			Metrics: MethodMetrics{Durability: 60, Speed: 95, MinInvasive: 90, Maintenance: 70, Risk: 85},
		},
		{
			ID: "airflow", Label: "AIRFLOW", Short: "Piaskowanie glicynowe — delikatne usunięcie osadów i przebarwień.",
			Icon: "💨", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("Efekt do nawrotu osadu", 3),
				Invasiveness: cell("Najdelikatniejsza metoda", 5), Risk: cell("Minimalne", 5), Hygiene: cell("Gładka powierzchnia", 5),
				Maintenance: cell("Powtórka co 6 mies.", 0),
				WorksWhen:   []string{"Osady i przebarwienia z kawy/herbaty", "Implanty i prace protetyczne"},
				NotIdealWhen: []string{"Twardy kamień poddziąsłowy", "Głębokie kieszonki"},
			},
			Metrics: MethodMetrics{Durability: 55, Speed: 95, MinInvasive: 95, Maintenance: 72, Risk: 90},
		},
		{
			ID: "curettage", Label: "Kiretaż", Short: "Oczyszczenie kieszonek dziąsłowych — leczenie, nie tylko higienizacja.",
			Icon: "🩺", Color: "#10b981", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 3), Visits: cell("2–4", 3), Durability: cell("Zatrzymuje periodontitis", 4),
				Invasiveness: cell("Poddziąsłowy zabieg", 3), Risk: cell("Przejściowa wrażliwość", 3), Hygiene: cell("Wymaga współpracy pacjenta", 3),
				Maintenance: cell("Wizyty periodontologiczne co 3–6 mies.", 0),
				WorksWhen:   []string{"Kieszonki >4 mm", "Aktywna choroba przyzębia"},
				NotIdealWhen: []string{"Brak kieszonek — wystarczy skaling", "Oczekujesz efektu kosmetycznego"},
			},
			Metrics: MethodMetrics{Durability: 80, Speed: 60, MinInvasive: 55, Maintenance: 55, Risk: 70},
		},

		// Leczenie dziąseł
		{
			ID: "hygiene_instruct", Label: "Higienizacja + instruktaż", Short: "Profesjonalne czyszczenie i nauka skutecznej higieny domowej.",
			Icon: "🪥", Color: "#10b981", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–2 wizyty", 5), Visits: cell("1–2", 5), Durability: cell("Zależna od pacjenta", 3),
				Invasiveness: cell("Nieinwazyjna", 5), Risk: cell("Brak", 5), Hygiene: cell("Fundament leczenia", 5),
				Maintenance: cell("Kontrola co 3–6 mies.", 0),
				WorksWhen:   []string{"Kieszonki do 4 mm", "Początek leczenia każdego zapalenia dziąseł"},
				NotIdealWhen: []string{"Kieszonki >6 mm", "Zaawansowana utrata kości"},
			},
			Metrics: MethodMetrics{Durability: 55, Speed: 90, MinInvasive: 95, Maintenance: 75, Risk: 90},
		},
		{
			ID: "curettage_closed", Label: "Kiretaż zamknięty", Short: "Oczyszczenie kieszonek bez odsłaniania korzeni.",
			Icon: "🩺", Color: "#10b981", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("2–4 tygodnie", 4), Visits: cell("2–4", 3), Durability: cell("Dobra przy współpracy", 4),
				Invasiveness: cell("Poddziąsłowy, bez cięcia", 4), Risk: cell("Przejściowa wrażliwość", 3), Hygiene: cell("Wymaga współpracy", 3),
				Maintenance: cell("Wizyty podtrzymujące co 3 mies.", 0),
				WorksWhen:   []string{"Kieszonki 4–6 mm", "Umiarkowana utrata kości"},
				NotIdealWhen: []string{"Kieszonki >6 mm", "Brak poprawy po leczeniu zamkniętym"},
			},
			Metrics: MethodMetrics{Durability: 72, Speed: 70, MinInvasive: 70, Maintenance: 58, Risk: 72},
		},
		{
			ID: "curettage_open", Label: "Kiretaż otwarty", Short: "Chirurgiczne oczyszczenie z odsłonięciem korzeni — najgłębsze kieszonki.",
			Icon: "🔪", Color: "#ef4444", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("4–8 tygodni", 2), Visits: cell("3–5", 2), Durability: cell("Najskuteczniejszy przy >6 mm", 5),
				Invasiveness: cell("Chirurgiczna", 2), Risk: cell("Recesje dziąseł możliwe", 2), Hygiene: cell("Wymaga dyscypliny", 3),
				Maintenance: cell("Stała opieka periodontologiczna", 0),
				WorksWhen:   []string{"Kieszonki >6 mm", "Zaawansowane zapalenie przyzębia"},
				NotIdealWhen: []string{"Płytkie kieszonki", "Słaba higiena domowa — efekt się cofnie"},
			},
			Metrics: MethodMetrics{Durability: 85, Speed: 40, MinInvasive: 35, Maintenance: 50, Risk: 55},
		},

		// Nadwrażliwość
		{
			ID: "varnish_sensitivity", Label: "Lakier fluorowy", Short: "Gabinetowa aplikacja lakieru zamykającego kanaliki zębinowe.",
			Icon: "🧴", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1–3", 4), Durability: cell("Kilka miesięcy", 2),
				Invasiveness: cell("Nieinwazyjny", 5), Risk: cell("Brak", 5), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Powtarzanie co 3–6 mies.", 0),
				WorksWhen:   []string{"Umiarkowana nadwrażliwość", "Po skalingu lub wybielaniu"},
				NotIdealWhen: []string{"Silny ból samoistny", "Przyczyna wymaga diagnostyki (ubytki, pęknięcia)"},
			},
			Metrics: MethodMetrics{Durability: 45, Speed: 90, MinInvasive: 95, Maintenance: 60, Risk: 92},
		},
		{
			ID: "laser_sensitivity", Label: "Laseroterapia", Short: "Laserowe zamknięcie kanalików — najtrwalszy efekt gabinetowy.",
			Icon: "🔦", Color: "#06b6d4", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("1–3 wizyty", 4), Visits: cell("1–3", 4), Durability: cell("Długotrwały efekt", 4),
				Invasiveness: cell("Nieinwazyjny", 5), Risk: cell("Minimalne", 5), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Kontrola przy nawrocie", 0),
				WorksWhen:   []string{"Silna nadwrażliwość", "Pasty i lakiery nie pomogły"},
				NotIdealWhen: []string{"Łagodne objawy — zacznij od pasty", "Przyczyną jest ubytek do wypełnienia"},
			},
			Metrics: MethodMetrics{Durability: 75, Speed: 80, MinInvasive: 92, Maintenance: 70, Risk: 90},
		},
		{
			ID: "paste_sensitivity", Label: "Pasta na nadwrażliwość", Short: "Domowa pierwsza linia — działa przy łagodnych objawach.",
			Icon: "🪥", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2–4 tygodnie stosowania", 3), Visits: cell("0", 5), Durability: cell("Tylko przy stałym stosowaniu", 2),
				Invasiveness: cell("Żadna", 5), Risk: cell("Brak", 5), Hygiene: cell("Element codziennej rutyny", 5),
				Maintenance: cell("Stosowanie ciągłe", 0),
				WorksWhen:   []string{"Łagodna, okazjonalna nadwrażliwość", "Profilaktycznie po zabiegach"},
				NotIdealWhen: []string{"Silny ból samoistny", "Brak poprawy po 4 tygodniach"},
			},
			Metrics: MethodMetrics{Durability: 30, Speed: 60, MinInvasive: 98, Maintenance: 50, Risk: 95},
		},

		// Ekstrakcje
		{
			ID: "extract_simple", Label: "Ekstrakcja prosta", Short: "Usunięcie wyrżniętego zęba w znieczuleniu miejscowym.",
			Icon: "🦷", Color: "#ef4444", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1–2", 5), Durability: cell("n/d", 0),
				Invasiveness: cell("Niska zabiegowo", 4), Risk: cell("Niskie", 4), Hygiene: cell("Standardowa opieka po zabiegu", 4),
				Maintenance: cell("Kontrola gojenia", 0),
				WorksWhen:   []string{"Ząb w pełni wyrżnięty, proste korzenie", "Brak aktywnego stanu zapalnego"},
				NotIdealWhen: []string{"Ząb zatrzymany w kości", "Zagięte lub kruche korzenie"},
			},
			Metrics: MethodMetrics{Durability: 50, Speed: 95, MinInvasive: 70, Maintenance: 80, Risk: 80},
		},
		{
			ID: "extract_surgical", Label: "Ekstrakcja chirurgiczna", Short: "Usunięcie z dojściem chirurgicznym — zęby zatrzymane i złamane.",
			Icon: "🔪", Color: "#ef4444", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("1 wizyta + gojenie", 3), Visits: cell("2–3", 4), Durability: cell("n/d", 0),
				Invasiveness: cell("Chirurgiczna", 2), Risk: cell("Obrzęk, dłuższe gojenie", 3), Hygiene: cell("Reżim pozabiegowy", 3),
				Maintenance: cell("Zdjęcie szwów, kontrola", 0),
				WorksWhen:   []string{"Ząb zatrzymany lub złamany przy dziąśle", "Skomplikowane korzenie"},
				NotIdealWhen: []string{"Ząb wyrżnięty, proste korzenie — wystarczy prosta", "Nieopanowany ostry stan zapalny"},
			},
			Metrics: MethodMetrics{Durability: 50, Speed: 80, MinInvasive: 40, Maintenance: 70, Risk: 65},
		},

		// Ósemki
		{
			ID: "wisdom_keep", Label: "Obserwacja ósemki", Short: "Zostawienie ósemki pod kontrolą RTG.",
			Icon: "👀", Color: "#10b981", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("Brak zabiegu", 5), Visits: cell("Kontrole", 5), Durability: cell("Dopóki brak objawów", 3),
				Invasiveness: cell("Żadna", 5), Risk: cell("Ryzyko nagłych powikłań", 3), Hygiene: cell("Trudny dostęp przy ósemkach", 2),
				Maintenance: cell("RTG kontrolne co 1–2 lata", 0),
				WorksWhen:   []string{"Ósemka wyrżnięta, w zwarciu, bez próchnicy", "Brak objawów"},
				NotIdealWhen: []string{"Nawracające stany zapalne", "Napiera na sąsiedni ząb"},
			},
			Metrics: MethodMetrics{Durability: 60, Speed: 98, MinInvasive: 98, Maintenance: 65, Risk: 60},
		},
		{
			ID: "wisdom_remove", Label: "Usunięcie ósemki", Short: "Ekstrakcja profilaktyczna lub ze wskazań — koniec problemu.",
			Icon: "🦷", Color: "#ef4444", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("1 wizyta + gojenie", 3), Visits: cell("2–3", 4), Durability: cell("Definitywne rozwiązanie", 5),
				Invasiveness: cell("Zabiegowa/chirurgiczna", 2), Risk: cell("Obrzęk, rzadko powikłania", 3), Hygiene: cell("Łatwiejsza po usunięciu", 4),
				Maintenance: cell("Kontrola gojenia", 0),
				WorksWhen:   []string{"Częste stany zapalne lub próchnica", "Ósemka ukośna, niszczy sąsiada"},
				NotIdealWhen: []string{"Ósemka zdrowa i funkcjonalna", "Przeciwwskazania ogólnozdrowotne"},
			},
			Metrics: MethodMetrics{Durability: 90, Speed: 70, MinInvasive: 40, Maintenance: 85, Risk: 60},
		},

		// Sinus lift
		{
			ID: "sinus_closed", Label: "Sinus lift zamknięty", Short: "Podniesienie dna zatoki przez łoże implantu — mniejszy zabieg.",
			Icon: "🔼", Color: "#38bdf8", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("Zwykle razem z implantem", 4), Visits: cell("2–4", 4), Durability: cell("Trwały efekt kostny", 4),
				Invasiveness: cell("Małoinwazyjny", 4), Risk: cell("Niskie przy 5–7 mm kości", 4), Hygiene: cell("Bez zmian", 4),
				Maintenance: cell("RTG kontrolne", 0),
				WorksWhen:   []string{"Brakuje 1–3 mm kości", "Zatoka zdrowa"},
				NotIdealWhen: []string{"Kość resztkowa <5 mm", "Patologia zatoki"},
			},
			Metrics: MethodMetrics{Durability: 82, Speed: 75, MinInvasive: 70, Maintenance: 75, Risk: 72},
		},
		{
			ID: "sinus_open", Label: "Sinus lift otwarty", Short: "Augmentacja przez okno boczne — duże braki kości.",
			Icon: "🪟", Color: "#38bdf8", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("6–9 miesięcy do implantu", 1), Visits: cell("3–5", 3), Durability: cell("Trwały efekt kostny", 5),
				Invasiveness: cell("Chirurgiczna", 2), Risk: cell("Perforacja błony możliwa", 3), Hygiene: cell("Reżim pozabiegowy", 3),
				Maintenance: cell("RTG/CBCT kontrolne", 0),
				WorksWhen:   []string{"Kość resztkowa <5 mm", "Potrzebna duża objętość augmentacji"},
				NotIdealWhen: []string{"Wystarczy technika zamknięta", "Nieleczona patologia zatoki"},
			},
			Metrics: MethodMetrics{Durability: 88, Speed: 30, MinInvasive: 40, Maintenance: 70, Risk: 60},
		},

		// Szczoteczki
		{
			ID: "brush_manual", Label: "Szczoteczka manualna", Short: "Klasyka — skuteczna przy dobrej technice.",
			Icon: "🪥", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2×2 min dziennie", 0), Visits: cell("0", 5), Durability: cell("Wymiana co 3 mies.", 3),
				Invasiveness: cell("Zależna od nacisku", 3), Risk: cell("Recesje przy złej technice", 3), Hygiene: cell("Skuteczna przy metodzie Bassa", 3),
				Maintenance: cell("Wymiana główki co 3 mies.", 0),
				WorksWhen:   []string{"Opanowana technika szczotkowania", "Minimalny budżet"},
				NotIdealWhen: []string{"Wrażliwe, krwawiące dziąsła", "Słaba technika — elektryczna wybacza więcej"},
			},
			Metrics: MethodMetrics{Durability: 60, Speed: 70, MinInvasive: 70, Maintenance: 85, Risk: 70},
		},
		{
			ID: "brush_electric", Label: "Szczoteczka elektryczna", Short: "Oscylacyjno-rotacyjna — wybacza błędy techniki.",
			Icon: "🔋", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2×2 min dziennie", 0), Visits: cell("0", 5), Durability: cell("Urządzenie na lata", 4),
				Invasiveness: cell("Kontrola nacisku wbudowana", 4), Risk: cell("Niskie", 4), Hygiene: cell("Skuteczniejsza od manualnej", 4),
				Maintenance: cell("Wymiana główki co 3 mies.", 0),
				WorksWhen:   []string{"Przeciętna technika szczotkowania", "Chcesz mierzalnej poprawy higieny"},
				NotIdealWhen: []string{"Świeżo po zabiegach chirurgicznych", "Bardzo wrażliwe dziąsła — rozważ soniczną"},
			},
			Metrics: MethodMetrics{Durability: 75, Speed: 80, MinInvasive: 75, Maintenance: 75, Risk: 78},
		},
		{
			ID: "brush_sonic", Label: "Szczoteczka soniczna", Short: "Wysoka częstotliwość drgań — najdelikatniejsza dla dziąseł.",
			Icon: "🎵", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2×2 min dziennie", 0), Visits: cell("0", 5), Durability: cell("Urządzenie na lata", 4),
				Invasiveness: cell("Najdelikatniejsza", 5), Risk: cell("Minimalne", 5), Hygiene: cell("Czyści też poza włosiem (dynamika płynu)", 5),
				Maintenance: cell("Wymiana główki co 3 mies.", 0),
				WorksWhen:   []string{"Wrażliwe dziąsła i recesje", "Implanty, licówki, mosty"},
				NotIdealWhen: []string{"Oczekujesz najniższej ceny", "Nieprzyjemne odczucie wibracji"},
			},
			Metrics: MethodMetrics{Durability: 75, Speed: 80, MinInvasive: 85, Maintenance: 75, Risk: 85},
		},

		// Międzyzębowe
		{
			ID: "floss", Label: "Nić dentystyczna", Short: "Czyszczenie ciasnych kontaktów międzyzębowych.",
			Icon: "🧵", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2–3 min dziennie", 0), Visits: cell("0", 5), Durability: cell("n/d", 0),
				Invasiveness: cell("Delikatna przy dobrej technice", 4), Risk: cell("Uraz dziąsła przy złej technice", 3), Hygiene: cell("Złoty standard ciasnych przestrzeni", 4),
				Maintenance: cell("Codzienne stosowanie", 0),
				WorksWhen:   []string{"Ciasne punkty styczne", "Opanowana technika"},
				NotIdealWhen: []string{"Szerokie przestrzenie — nić za cienka", "Ograniczona zręczność manualna"},
			},
			Metrics: MethodMetrics{Durability: 60, Speed: 70, MinInvasive: 80, Maintenance: 70, Risk: 80},
		},
		{
			ID: "interdental_brush", Label: "Szczoteczki międzyzębowe", Short: "Najskuteczniejsze w normalnych i szerokich przestrzeniach.",
			Icon: "🌲", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("2–3 min dziennie", 0), Visits: cell("0", 5), Durability: cell("Wymiana co tydzień", 3),
				Invasiveness: cell("Delikatna przy dobranym rozmiarze", 4), Risk: cell("Minimalne", 4), Hygiene: cell("Skuteczniejsze niż nić w szerokich przestrzeniach", 5),
				Maintenance: cell("Dobór rozmiaru u higienistki", 0),
				WorksWhen:   []string{"Normalne i szerokie przestrzenie", "Mosty i implanty"},
				NotIdealWhen: []string{"Bardzo ciasne kontakty", "Brak dobranego rozmiaru"},
			},
			Metrics: MethodMetrics{Durability: 65, Speed: 75, MinInvasive: 80, Maintenance: 68, Risk: 82},
		},
		{
			ID: "irrigator", Label: "Irygator", Short: "Pulsacyjny strumień wody — wokół mostów, implantów i zamków.",
			Icon: "💦", Color: "#06b6d4", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–2 min dziennie", 0), Visits: cell("0", 5), Durability: cell("Urządzenie na lata", 4),
				Invasiveness: cell("Bezkontaktowy", 5), Risk: cell("Brak", 5), Hygiene: cell("Uzupełnienie, nie zastępstwo szczotkowania", 4),
				Maintenance: cell("Czyszczenie zbiornika", 0),
				WorksWhen:   []string{"Mosty, implanty, aparat stały", "Ograniczona zręczność — prostszy niż nić"},
				NotIdealWhen: []string{"Jako jedyna metoda czyszczenia międzyzębowego", "Usuwanie zmineralizowanego osadu"},
			},
			Metrics: MethodMetrics{Durability: 70, Speed: 85, MinInvasive: 90, Maintenance: 70, Risk: 88},
		},

		// Bruksizm: szyna vs nic
		{
			ID: "splint_guard", Label: "Szyna relaksacyjna", Short: "Nocna ochrona zębów przed zgrzytaniem i zaciskaniem.",
			Icon: "🛡️", Color: "#10b981", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("1–2 tygodnie", 4), Visits: cell("2–3", 4), Durability: cell("2–5 lat", 4),
				Invasiveness: cell("Żadna", 5), Risk: cell("Brak", 5), Hygiene: cell("Mycie szyny codziennie", 4),
				Maintenance: cell("Kontrola dopasowania 1×/rok", 0),
				WorksWhen:   []string{"Objawy bruksizmu dowolnego stopnia", "Ochrona prac protetycznych"},
				NotIdealWhen: []string{"Nie będziesz jej nosić", "Bezdech senny wymaga innej szyny"},
			},
			Metrics: MethodMetrics{Durability: 80, Speed: 85, MinInvasive: 95, Maintenance: 70, Risk: 92},
		},
		{
			ID: "no_guard", Label: "Bez szyny (obserwacja)", Short: "Brak ochrony — akceptacja postępujących starć.",
			Icon: "⏳", Color: "#ef4444", RecommendedSpecialist: "ilona",
			Table: MethodTable{
				Time: cell("Brak zabiegu", 5), Visits: cell("0", 5), Durability: cell("Starcia postępują", 1),
				Invasiveness: cell("Żadna", 5), Risk: cell("Pęknięcia, utrata tkanek", 1), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Kontrola starć na wizytach", 0),
				WorksWhen:   []string{"Epizodyczny, łagodny bruksizm", "Diagnoza jeszcze niepotwierdzona"},
				NotIdealWhen: []string{"Widoczne starcia", "Silne objawy — ból, pęknięcia"},
			},
			Metrics: MethodMetrics{Durability: 20, Speed: 98, MinInvasive: 98, Maintenance: 80, Risk: 30},
		},

		// Dzieci
		{
			ID: "sealant", Label: "Lakowanie bruzd", Short: "Uszczelnienie głębokich bruzd — bariera przed próchnicą.",
			Icon: "🛡️", Color: "#ec4899", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("Kilka lat", 4),
				Invasiveness: cell("Bezbolesna", 5), Risk: cell("Brak", 5), Hygiene: cell("Ułatwia czyszczenie bruzd", 5),
				Maintenance: cell("Kontrola szczelności laku", 0),
				WorksWhen:   []string{"Świeżo wyrżnięte szóstki z głębokimi bruzdami", "Podwyższone ryzyko próchnicy"},
				NotIdealWhen: []string{"Próchnica już obecna w bruździe", "White spot — rozważ infiltrację"},
			},
			Metrics: MethodMetrics{Durability: 75, Speed: 90, MinInvasive: 95, Maintenance: 80, Risk: 92},
		},
		{
			ID: "fluoride_varnish", Label: "Lakier fluorowy", Short: "Wzmocnienie szkliwa — profilaktyka całej jamy ustnej.",
			Icon: "💧", Color: "#ec4899", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 krótka wizyta", 5), Visits: cell("Co 3–6 mies.", 4), Durability: cell("Do kolejnej aplikacji", 2),
				Invasiveness: cell("Bezbolesna", 5), Risk: cell("Brak", 5), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Powtarzanie regularne", 0),
				WorksWhen:   []string{"Ogólna profilaktyka u każdego dziecka", "Wysokie ryzyko próchnicy"},
				NotIdealWhen: []string{"Głębokie bruzdy — samo fluoryzowanie nie wystarczy", "Rodzina nie przychodzi regularnie"},
			},
			Metrics: MethodMetrics{Durability: 45, Speed: 95, MinInvasive: 98, Maintenance: 60, Risk: 95},
		},
		{
			ID: "icon_infiltration", Label: "Infiltracja ICON", Short: "Zatrzymanie wczesnej próchnicy bez borowania.",
			Icon: "⚪", Color: "#ec4899", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("Trwałe zatrzymanie zmiany", 4),
				Invasiveness: cell("Bez borowania", 5), Risk: cell("Minimalne", 5), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Kontrola zmiany na wizytach", 0),
				WorksWhen:   []string{"White spot — początkowa demineralizacja", "Przebarwienia po aparacie"},
				NotIdealWhen: []string{"Ubytek przekroczył szkliwo", "Zdrowe zęby — wystarczy lakowanie/fluoryzacja"},
			},
			Metrics: MethodMetrics{Durability: 70, Speed: 90, MinInvasive: 92, Maintenance: 78, Risk: 90},
		},
		{
			ID: "fluoride_office", Label: "Fluoryzacja gabinetowa", Short: "Profesjonalny lakier o wysokim stężeniu — kontrolowana aplikacja.",
			Icon: "🏥", Color: "#ec4899", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 krótka wizyta", 5), Visits: cell("Co 3–6 mies.", 3), Durability: cell("Do kolejnej wizyty", 3),
				Invasiveness: cell("Bezbolesna", 5), Risk: cell("Brak przy aplikacji profesjonalnej", 5), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Regularne wizyty", 0),
				WorksWhen:   []string{"Wysokie ryzyko próchnicy", "Dziecko poniżej 3 lat (kontrola dawki)"},
				NotIdealWhen: []string{"Rodzina nie może przychodzić regularnie", "Niskie ryzyko — wystarczy pasta z fluorem"},
			},
			Metrics: MethodMetrics{Durability: 60, Speed: 85, MinInvasive: 95, Maintenance: 55, Risk: 94},
		},
		{
			ID: "fluoride_home", Label: "Fluoryzacja domowa", Short: "Pasty i płukanki o podwyższonym stężeniu — codzienna ochrona.",
			Icon: "🏠", Color: "#ec4899", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("Codziennie w domu", 0), Visits: cell("0", 5), Durability: cell("Przy stałym stosowaniu", 3),
				Invasiveness: cell("Żadna", 5), Risk: cell("Wymaga kontroli dawki u małych dzieci", 4), Hygiene: cell("Element rutyny", 5),
				Maintenance: cell("Stosowanie ciągłe", 0),
				WorksWhen:   []string{"Rzadkie wizyty w gabinecie", "Dziecko 3+ lat, współpracujące"},
				NotIdealWhen: []string{"Dziecko poniżej 3 lat bez nadzoru", "Bardzo wysokie ryzyko — potrzebna też gabinetowa"},
			},
			Metrics: MethodMetrics{Durability: 50, Speed: 75, MinInvasive: 96, Maintenance: 75, Risk: 85},
		},
		{
			ID: "baby_filling", Label: "Wypełnienie mleczaka", Short: "Zachowawcze leczenie próchnicy zęba mlecznego.",
			Icon: "🖌️", Color: "#ec4899", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("Do wymiany zęba", 4),
				Invasiveness: cell("Minimalna", 4), Risk: cell("Niskie", 4), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("Kontrola na wizytach", 0),
				WorksWhen:   []string{"Próchnica płytka lub średnia", "Miazga nieobjęta procesem"},
				NotIdealWhen: []string{"Próchnica sięga miazgi", "Ropień lub przetoka"},
			},
			Metrics: MethodMetrics{Durability: 65, Speed: 92, MinInvasive: 85, Maintenance: 80, Risk: 85},
		},
		{
			ID: "baby_pulpotomy", Label: "Pulpotomia", Short: "Leczenie miazgi mleczaka — ratuje ząb do naturalnej wymiany.",
			Icon: "🔬", Color: "#ec4899", RecommendedSpecialist: "katarzyna",
			Table: MethodTable{
				Time: cell("1–2 wizyty", 4), Visits: cell("1–2", 4), Durability: cell("Do wymiany zęba", 4),
				Invasiveness: cell("Głębsza interwencja", 3), Risk: cell("Wymaga współpracy dziecka", 3), Hygiene: cell("Bez zmian", 5),
				Maintenance: cell("RTG kontrolne", 0),
				WorksWhen:   []string{"Głęboka próchnica z zajęciem miazgi", "Do wymiany zostało >1 rok"},
				NotIdealWhen: []string{"Ropień", "Wymiana zęba w ciągu roku"},
			},
			Metrics: MethodMetrics{Durability: 60, Speed: 75, MinInvasive: 60, Maintenance: 75, Risk: 70},
		},
		{
			ID: "baby_extraction", Label: "Ekstrakcja mleczaka", Short: "Usunięcie zęba mlecznego — gdy leczenie nie ma sensu.",
			Icon: "🦷", Color: "#ec4899", RecommendedSpecialist: "marcin",
			Table: MethodTable{
				Time: cell("1 wizyta", 5), Visits: cell("1", 5), Durability: cell("n/d", 0),
				Invasiveness: cell("Nieodwracalna dla mleczaka", 2), Risk: cell("Możliwa utrata miejsca dla stałego", 3), Hygiene: cell("Standardowa", 4),
				Maintenance: cell("Ew. utrzymywacz przestrzeni", 0),
				WorksWhen:   []string{"Ropień lub przetoka", "Wymiana na stały ząb blisko"},
				NotIdealWhen: []string{"Ząb da się wyleczyć, a wymiana daleko", "Ryzyko utraty miejsca bez utrzymywacza"},
			},
			Metrics: MethodMetrics{Durability: 40, Speed: 95, MinInvasive: 45, Maintenance: 65, Risk: 68},
		},
	}
}
