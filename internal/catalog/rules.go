package catalog

// defaultGatingRules returns the production rule list. Declaration order is
// the application order, so badges accumulate in the order rules appear here.
func defaultGatingRules() []GatingRule {
	return []GatingRule{
		// Estetyka
		{ID: "smile_brux", ComparatorID: "smile_upgrade", Answers: map[string]string{"bruxism": "yes"}, Effects: []GatingEffect{
			{MethodID: "bonding_smile", ScoreDelta: -15, Badge: "Bruksizm skraca żywotność bondingu — szyna nocna obowiązkowa."},
			{MethodID: "whitening", ScoreDelta: -5},
		}},
		{ID: "smile_color_only", ComparatorID: "smile_upgrade", Answers: map[string]string{"goal": "color"}, Effects: []GatingEffect{
			{MethodID: "whitening", ScoreDelta: 15},
			{MethodID: "crown_smile", ScoreDelta: -10},
		}},
		{ID: "smile_shape", ComparatorID: "smile_upgrade", Answers: map[string]string{"goal": "shape"}, Effects: []GatingEffect{
			{MethodID: "whitening", ScoreDelta: -20, Badge: "Wybielanie nie zmienia kształtu zęba."},
		}},
		{ID: "veneer_brux", ComparatorID: "veneer_type", Answers: map[string]string{"bruxism_v": "yes"}, Effects: []GatingEffect{
			{MethodID: "veneer_comp_type", ScoreDelta: -15, Badge: "Bruksizm skraca żywotność licówek kompozytowych."},
		}},
		{ID: "bonding_many", ComparatorID: "bonding_scope", Answers: map[string]string{"scope_b": "many"}, Effects: []GatingEffect{
			{MethodID: "bonding_spot", ScoreDelta: -20, Badge: "Bonding punktowy nie nadaje się do 4+ zębów."},
			{MethodID: "bonding_full", ScoreDelta: 10},
		}},
		{ID: "bonding_brux_scope", ComparatorID: "bonding_scope", Answers: map[string]string{"bruxism_b": "yes"}, Effects: []GatingEffect{
			{MethodID: "bonding_full", ScoreDelta: -10, Badge: "Bruksizm — rozważ szynę nocną."},
		}},
		{ID: "align_fast", ComparatorID: "straighten_vs_mask", Answers: map[string]string{"patience": "fast"}, Effects: []GatingEffect{
			{MethodID: "aligners", ScoreDelta: -15, Badge: "Ortodoncja wymaga min. 6 miesięcy."},
			{MethodID: "bonding_mask", ScoreDelta: 10},
		}},
		{ID: "dia_large", ComparatorID: "diastema", Answers: map[string]string{"gap_size": "large"}, Effects: []GatingEffect{
			{MethodID: "bonding_dia", ScoreDelta: -15, Badge: "Duża diastema: bonding może wyglądać nienaturalnie."},
			{MethodID: "ortho_dia", ScoreDelta: 8},
		}},
		{ID: "wear_severe", ComparatorID: "bruxism_wear", Answers: map[string]string{"wear_level": "severe"}, Effects: []GatingEffect{
			{MethodID: "splint_rebuild", ScoreDelta: -10, Badge: "Zaawansowane starcia mogą wymagać pełnego pokrycia."},
			{MethodID: "crown_brux", ScoreDelta: 10},
		}},
		{ID: "wear_no_splint", ComparatorID: "bruxism_wear", Answers: map[string]string{"splint_ok": "no"}, Effects: []GatingEffect{
			{MethodID: "splint_rebuild", ScoreDelta: -10, Badge: "Bez szyny efekt odbudowy będzie krótkotrwały."},
			{MethodID: "veneer_brux", ScoreDelta: -8, Badge: "Licówki bez szyny mają większe ryzyko pęknięcia."},
		}},

		// Braki zębowe
		{ID: "missing_healthy", ComparatorID: "missing_tooth", Answers: map[string]string{"neighbors": "healthy"}, Effects: []GatingEffect{
			{MethodID: "bridge", ScoreDelta: -12, Badge: "Szkoda szlifować zdrowe sąsiednie zęby pod most."},
			{MethodID: "implant", ScoreDelta: 8},
		}},
		{ID: "missing_many", ComparatorID: "missing_tooth", Answers: map[string]string{"count": "many"}, Effects: []GatingEffect{
			{MethodID: "implant", ScoreDelta: -8},
			{MethodID: "partial_denture", ScoreDelta: 10},
		}},
		{ID: "implant_infection", ComparatorID: "implant_timing", Answers: map[string]string{"infection": "yes"}, Effects: []GatingEffect{
			{MethodID: "implant_immediate", ScoreDelta: -20, Badge: "Infekcja wyklucza implant natychmiastowy."},
			{MethodID: "implant_delayed", ScoreDelta: 10},
		}},
		{ID: "implant_bone_bad", ComparatorID: "implant_timing", Answers: map[string]string{"bone": "deficient"}, Effects: []GatingEffect{
			{MethodID: "implant_immediate", ScoreDelta: -15, Badge: "Brak kości — implant odroczony z augmentacją."},
		}},
		{ID: "bridge_healthy_abut", ComparatorID: "bridge_types", Answers: map[string]string{"abutment": "healthy"}, Effects: []GatingEffect{
			{MethodID: "bridge_on_teeth", ScoreDelta: -12, Badge: "Zdrowe filary — szkoda szlifować pod most."},
		}},
		{ID: "bridge_no_bone", ComparatorID: "bridge_types", Answers: map[string]string{"bone_b": "no"}, Effects: []GatingEffect{
			{MethodID: "implant", ScoreDelta: -15, Badge: "Brak kości ogranicza opcje implantologiczne."},
			{MethodID: "bridge_on_implants", ScoreDelta: -15},
		}},
		{ID: "denture_temp", ComparatorID: "denture_types", Answers: map[string]string{"duration_d": "temp"}, Effects: []GatingEffect{
			{MethodID: "denture_acrylic", ScoreDelta: 12, Badge: "Akrylowa: idealna jako tymczasowa."},
			{MethodID: "denture_skeletal", ScoreDelta: -5},
		}},
		{ID: "denture_aesthetics", ComparatorID: "denture_types", Answers: map[string]string{"aesthetics_d": "critical"}, Effects: []GatingEffect{
			{MethodID: "denture_flexible", ScoreDelta: 10},
			{MethodID: "denture_acrylic", ScoreDelta: -5, Badge: "Akrylowa: metalowe klamry widoczne."},
		}},
		{ID: "full_loose", ComparatorID: "full_denture", Answers: map[string]string{"stability": "loose"}, Effects: []GatingEffect{
			{MethodID: "overdenture", ScoreDelta: 15},
			{MethodID: "full_denture", ScoreDelta: -10, Badge: "Luźna proteza — implanty drastycznie poprawią komfort."},
		}},
		{ID: "full_no_surgery", ComparatorID: "full_denture", Answers: map[string]string{"surgery_ok": "no"}, Effects: []GatingEffect{
			{MethodID: "overdenture", ScoreDelta: -20, Badge: "Overdenture wymaga zabiegu chirurgicznego."},
		}},
		{ID: "onlay_endo", ComparatorID: "onlay_vs_crown", Answers: map[string]string{"endo_done": "yes"}, Effects: []GatingEffect{
			{MethodID: "crown_rebuild", ScoreDelta: 10},
			{MethodID: "onlay", ScoreDelta: -8, Badge: "Ząb po endo — korona daje lepszą ochronę."},
		}},
		{ID: "onlay_brux", ComparatorID: "onlay_vs_crown", Answers: map[string]string{"bruxism_o": "yes"}, Effects: []GatingEffect{
			{MethodID: "onlay", ScoreDelta: -8, Badge: "Bruksizm: korona bezpieczniejsza."},
		}},
		{ID: "crown_moderate", ComparatorID: "crown_vs_composite", Answers: map[string]string{"destruction": "moderate"}, Effects: []GatingEffect{
			{MethodID: "composite_rebuild", ScoreDelta: 10},
			{MethodID: "crown_rebuild", ScoreDelta: -5},
		}},
		{ID: "crown_endo_back", ComparatorID: "crown_vs_composite", Answers: map[string]string{"endo_cr": "yes", "position_cr": "back"}, Effects: []GatingEffect{
			{MethodID: "crown_rebuild", ScoreDelta: 12},
			{MethodID: "composite_rebuild", ScoreDelta: -10, Badge: "Ząb boczny po endo — korona chroni przed pęknięciem."},
		}},

		// Leczenie kanałowe
		{ID: "endo_hopeless", ComparatorID: "endo_vs_extract", Answers: map[string]string{"tooth_state": "hopeless"}, Effects: []GatingEffect{
			{MethodID: "endo", ScoreDelta: -25, Badge: "Ząb nie nadaje się do leczenia — ekstrakcja wskazana."},
			{MethodID: "extract_implant", ScoreDelta: 10},
		}},
		{ID: "endo_strategic", ComparatorID: "endo_vs_extract", Answers: map[string]string{"strategic": "yes"}, Effects: []GatingEffect{
			{MethodID: "endo", ScoreDelta: 12},
		}},
		{ID: "retreat_post", ComparatorID: "retreatment", Answers: map[string]string{"post_present": "yes"}, Effects: []GatingEffect{
			{MethodID: "re_endo", ScoreDelta: -15, Badge: "Wkład w kanale uniemożliwia rewizję od góry."},
			{MethodID: "resection", ScoreDelta: 10},
		}},
		{ID: "retreat_acute", ComparatorID: "retreatment", Answers: map[string]string{"symptoms_r": "acute"}, Effects: []GatingEffect{
			{MethodID: "extraction_after", ScoreDelta: 8},
		}},
		{ID: "endo_abscess", ComparatorID: "endo_sessions", Answers: map[string]string{"diagnosis_e": "abscess"}, Effects: []GatingEffect{
			{MethodID: "endo_1visit", ScoreDelta: -15, Badge: "Ropień — dezynfekcja wymaga wkładki (2 wizyty)."},
			{MethodID: "endo_2visit", ScoreDelta: 10},
		}},
		{ID: "endo_simple_pulp", ComparatorID: "endo_sessions", Answers: map[string]string{"diagnosis_e": "pulpitis", "anatomy_e": "simple"}, Effects: []GatingEffect{
			{MethodID: "endo_1visit", ScoreDelta: 10},
		}},
		{ID: "post_endo_back", ComparatorID: "post_endo_rebuild", Answers: map[string]string{"tooth_type_pe": "back"}, Effects: []GatingEffect{
			{MethodID: "post_crown", ScoreDelta: 10},
			{MethodID: "filling_post_endo", ScoreDelta: -8, Badge: "Ząb boczny po endo — korona zalecana."},
		}},
		{ID: "post_endo_brux", ComparatorID: "post_endo_rebuild", Answers: map[string]string{"bruxism_pe": "yes"}, Effects: []GatingEffect{
			{MethodID: "post_crown", ScoreDelta: 8},
			{MethodID: "filling_post_endo", ScoreDelta: -10, Badge: "Bruksizm: wypełnienie na zębie po endo to ryzyko pęknięcia."},
		}},

		// Periodontologia
		{ID: "hyg_deep", ComparatorID: "hygiene_methods", Answers: map[string]string{"pockets": "deep"}, Effects: []GatingEffect{
			{MethodID: "scaling", ScoreDelta: -10, Badge: "Głębokie kieszonki wymagają kiretażu."},
			{MethodID: "airflow", ScoreDelta: -10},
			{MethodID: "curettage", ScoreDelta: 15},
		}},
		{ID: "hyg_sensitive", ComparatorID: "hygiene_methods", Answers: map[string]string{"sensitivity_h": "sensitive"}, Effects: []GatingEffect{
			{MethodID: "airflow", ScoreDelta: 10},
			{MethodID: "scaling", ScoreDelta: -5},
		}},
		{ID: "hyg_implants", ComparatorID: "hygiene_methods", Answers: map[string]string{"implants_h": "yes"}, Effects: []GatingEffect{
			{MethodID: "airflow", ScoreDelta: 10, Badge: "AIRFLOW bezpieczny dla implantów."},
		}},
		{ID: "gum_shallow", ComparatorID: "gum_treatment", Answers: map[string]string{"pockets_g": "up_to_4"}, Effects: []GatingEffect{
			{MethodID: "hygiene_instruct", ScoreDelta: 10},
			{MethodID: "curettage_open", ScoreDelta: -15},
		}},
		{ID: "gum_deep", ComparatorID: "gum_treatment", Answers: map[string]string{"pockets_g": "over_6"}, Effects: []GatingEffect{
			{MethodID: "curettage_open", ScoreDelta: 12},
			{MethodID: "hygiene_instruct", ScoreDelta: -10, Badge: "Kieszonki >6 mm wymagają interwencji chirurgicznej."},
		}},
		{ID: "sens_severe", ComparatorID: "sensitivity", Answers: map[string]string{"intensity": "severe"}, Effects: []GatingEffect{
			{MethodID: "paste_sensitivity", ScoreDelta: -15, Badge: "Silna nadwrażliwość — pasta nie wystarczy."},
			{MethodID: "laser_sensitivity", ScoreDelta: 10},
		}},
		{ID: "sens_tried_paste", ComparatorID: "sensitivity", Answers: map[string]string{"tried_paste": "yes_not"}, Effects: []GatingEffect{
			{MethodID: "paste_sensitivity", ScoreDelta: -15, Badge: "Pasta nie pomogła — potrzebna interwencja gabinetowa."},
			{MethodID: "varnish_sensitivity", ScoreDelta: 8},
			{MethodID: "laser_sensitivity", ScoreDelta: 8},
		}},

		// Chirurgia
		{ID: "extract_impacted", ComparatorID: "extraction_type", Answers: map[string]string{"tooth_visible": "no"}, Effects: []GatingEffect{
			{MethodID: "extract_simple", ScoreDelta: -25, Badge: "Ząb zatrzymany — konieczna ekstrakcja chirurgiczna."},
			{MethodID: "extract_surgical", ScoreDelta: 10},
		}},
		{ID: "wisdom_frequent", ComparatorID: "wisdom_teeth", Answers: map[string]string{"symptoms_w": "frequent"}, Effects: []GatingEffect{
			{MethodID: "wisdom_keep", ScoreDelta: -20, Badge: "Częste problemy — wskazanie do ekstrakcji."},
			{MethodID: "wisdom_remove", ScoreDelta: 10},
		}},
		{ID: "wisdom_tilted", ComparatorID: "wisdom_teeth", Answers: map[string]string{"position_w": "tilted"}, Effects: []GatingEffect{
			{MethodID: "wisdom_keep", ScoreDelta: -12, Badge: "Ukośna ósemka — napiera na sąsiedni ząb."},
			{MethodID: "wisdom_remove", ScoreDelta: 8},
		}},
		{ID: "wisdom_caries", ComparatorID: "wisdom_teeth", Answers: map[string]string{"caries_w": "yes"}, Effects: []GatingEffect{
			{MethodID: "wisdom_keep", ScoreDelta: -15, Badge: "Próchnica ósemki lub sąsiada — ekstrakcja wskazana."},
			{MethodID: "wisdom_remove", ScoreDelta: 10},
		}},
		{ID: "sinus_little_bone", ComparatorID: "sinus_lift", Answers: map[string]string{"bone_height": "little"}, Effects: []GatingEffect{
			{MethodID: "sinus_closed", ScoreDelta: -15, Badge: "Zbyt mało kości na zamknięty — potrzebny otwarty."},
			{MethodID: "sinus_open", ScoreDelta: 10},
		}},
		{ID: "sinus_issues", ComparatorID: "sinus_lift", Answers: map[string]string{"sinus_health": "issues"}, Effects: []GatingEffect{
			{MethodID: "sinus_closed", ScoreDelta: -10, Badge: "Patologia zatoki — konsultacja laryngologiczna."},
			{MethodID: "sinus_open", ScoreDelta: -10, Badge: "Patologia zatoki — leczenie zatoki przed augmentacją."},
		}},

		// Profilaktyka
		{ID: "brush_sensitive", ComparatorID: "toothbrush", Answers: map[string]string{"gums": "sensitive"}, Effects: []GatingEffect{
			{MethodID: "brush_sonic", ScoreDelta: 10},
			{MethodID: "brush_manual", ScoreDelta: -8, Badge: "Wrażliwe dziąsła — soniczna delikatniejsza."},
		}},
		{ID: "brush_prosthetics", ComparatorID: "toothbrush", Answers: map[string]string{"prosthetics": "yes"}, Effects: []GatingEffect{
			{MethodID: "brush_sonic", ScoreDelta: 8},
		}},
		{ID: "inter_tight", ComparatorID: "interdental", Answers: map[string]string{"spaces": "tight"}, Effects: []GatingEffect{
			{MethodID: "floss", ScoreDelta: 10},
			{MethodID: "interdental_brush", ScoreDelta: -8, Badge: "Ciasne kontakty — szczoteczka może nie wejść."},
		}},
		{ID: "inter_wide", ComparatorID: "interdental", Answers: map[string]string{"spaces": "wide"}, Effects: []GatingEffect{
			{MethodID: "interdental_brush", ScoreDelta: 12},
			{MethodID: "floss", ScoreDelta: -8, Badge: "Szerokie przestrzenie — nić za cienka."},
		}},
		{ID: "inter_prosth", ComparatorID: "interdental", Answers: map[string]string{"prosthetics_i": "yes"}, Effects: []GatingEffect{
			{MethodID: "irrigator", ScoreDelta: 10, Badge: "Irygator: idealny do mostów i implantów."},
			{MethodID: "interdental_brush", ScoreDelta: 8},
		}},
		{ID: "brux_severe", ComparatorID: "bruxism_guard", Answers: map[string]string{"symptoms_br": "severe"}, Effects: []GatingEffect{
			{MethodID: "no_guard", ScoreDelta: -25, Badge: "Silny bruksizm bez szyny prowadzi do pęknięć i utraty zębów."},
			{MethodID: "splint_guard", ScoreDelta: 10},
		}},
		{ID: "brux_wear_visible", ComparatorID: "bruxism_guard", Answers: map[string]string{"wear_visible": "yes"}, Effects: []GatingEffect{
			{MethodID: "no_guard", ScoreDelta: -15, Badge: "Widoczne starcia — szyna konieczna."},
		}},

		// Dzieci
		{ID: "child_ws", ComparatorID: "sealant_vs_fluoride", Answers: map[string]string{"tooth_status": "white_spot"}, Effects: []GatingEffect{
			{MethodID: "icon_infiltration", ScoreDelta: 12},
			{MethodID: "sealant", ScoreDelta: -5},
		}},
		{ID: "child_high_risk", ComparatorID: "sealant_vs_fluoride", Answers: map[string]string{"risk_caries": "high"}, Effects: []GatingEffect{
			{MethodID: "sealant", ScoreDelta: 8},
			{MethodID: "fluoride_varnish", ScoreDelta: 5},
		}},
		{ID: "fluoride_high", ComparatorID: "fluoride_method", Answers: map[string]string{"caries_risk_f": "high"}, Effects: []GatingEffect{
			{MethodID: "fluoride_office", ScoreDelta: 10},
		}},
		{ID: "fluoride_rare", ComparatorID: "fluoride_method", Answers: map[string]string{"visits_freq": "rare"}, Effects: []GatingEffect{
			{MethodID: "fluoride_home", ScoreDelta: 10},
			{MethodID: "fluoride_office", ScoreDelta: -5},
		}},
		{ID: "baby_abscess", ComparatorID: "baby_tooth_caries", Answers: map[string]string{"depth": "abscess"}, Effects: []GatingEffect{
			{MethodID: "baby_filling", ScoreDelta: -20, Badge: "Ropień — wypełnienie nie wystarczy."},
			{MethodID: "baby_extraction", ScoreDelta: 12},
		}},
		{ID: "baby_soon", ComparatorID: "baby_tooth_caries", Answers: map[string]string{"exchange": "soon"}, Effects: []GatingEffect{
			{MethodID: "baby_pulpotomy", ScoreDelta: -10, Badge: "Wymiana blisko — leczenie kanałowe niekonieczne."},
			{MethodID: "baby_extraction", ScoreDelta: 8},
		}},
		{ID: "baby_difficult", ComparatorID: "baby_tooth_caries", Answers: map[string]string{"cooperation": "difficult"}, Effects: []GatingEffect{
			{MethodID: "baby_pulpotomy", ScoreDelta: -8, Badge: "Trudna współpraca: pulpotomia wymaga spokojnego dziecka."},
		}},
	}
}
