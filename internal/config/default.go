package config

// Default returns the built-in configuration that ships with sieve: the
// mining-incident label spaces and the Indonesian/English keyword rules the
// corpus was originally audited with. Operators retune via a YAML file, not
// by editing this.
func Default() Config {
	return Config{
		Labels: Labels{
			Intent:  []string{"SOS", "SOS_POSSIBLE", "NON_SOS"},
			Urgency: []string{"HIGH", "MEDIUM", "LOW"},
			Events: []string{
				"INJURY_MEDICAL",
				"TRAPPED_LOST",
				"COLLISION_VEHICLE",
				"FIRE_EXPLOSION",
				"HAZMAT_RELEASE",
				"GROUND_FAILURE",
				"ELECTRICAL",
				"SECURITY_ASSAULT",
			},
		},
		Rules: []Rule{
			{
				Name:          "kw_collision_missing_event",
				Pattern:       `\b(tabrak|menabrak|tabrakan|tertabrak|nabrak|bentur|ketabrak|collision)\b`,
				SuggestEvents: []string{"COLLISION_VEHICLE"},
				MinIntent:     "SOS_POSSIBLE",
				MinUrgency:    "MEDIUM",
			},
			{
				Name:          "kw_injury_missing_event",
				Pattern:       `\b(berdarah|luka|patah|cedera|trauma|memar|pingsan|patah tulang)\b`,
				SuggestEvents: []string{"INJURY_MEDICAL"},
				MinIntent:     "SOS",
				MinUrgency:    "HIGH",
			},
			{
				Name:          "kw_trapped_missing_event",
				Pattern:       `\b(terjepit|terperangkap|terjebak|ketindih|keblender|kejit|kejepit)\b`,
				SuggestEvents: []string{"TRAPPED_LOST"},
				MinIntent:     "SOS",
				MinUrgency:    "HIGH",
			},
			{
				Name:          "kw_hazmat_missing_event",
				Pattern:       `\b(h2s|hidrogen sulfida|gas beracun|sesak nafas|sesak napas|keracunan|asphyx|asfiksia)\b`,
				SuggestEvents: []string{"HAZMAT_RELEASE"},
				MinIntent:     "SOS",
				MinUrgency:    "HIGH",
			},
			{
				Name:          "kw_fire_missing_event",
				Pattern:       `\b(kebakaran|api|asap tebal|terbakar|meledak|ledakan|fire)\b`,
				SuggestEvents: []string{"FIRE_EXPLOSION"},
				MinIntent:     "SOS",
				MinUrgency:    "HIGH",
			},
			{
				Name:          "kw_electrical_missing_event",
				Pattern:       `\b(korslet|arus pendek|tersengat|kesetrum|listrik|sparking)\b`,
				SuggestEvents: []string{"ELECTRICAL"},
				MinIntent:     "SOS_POSSIBLE",
				MinUrgency:    "MEDIUM",
			},
			{
				Name:          "kw_ground_failure_missing_event",
				Pattern:       `\b(longsor|ambrol|runtuh|retak tanah|highwall|lowwall|slip)\b`,
				SuggestEvents: []string{"GROUND_FAILURE"},
				MinIntent:     "SOS_POSSIBLE",
				MinUrgency:    "MEDIUM",
			},
			{
				Name:          "kw_security_missing_event",
				Pattern:       `\b(pemukulan|penyerangan|perkelahian|begal|assault|ancam|mengancam)\b`,
				SuggestEvents: []string{"SECURITY_ASSAULT"},
				MinIntent:     "SOS",
				MinUrgency:    "HIGH",
			},
			{
				Name:       "kw_emergency_word_but_non_sos",
				Pattern:    `\b(emergency|darurat|tolong|urgent|segera)\b`,
				MinIntent:  "SOS_POSSIBLE",
				MinUrgency: "MEDIUM",
			},
		},
		Escalation: Escalation{
			HeavyMinUrgency: map[string]string{
				"FIRE_EXPLOSION":    "HIGH",
				"HAZMAT_RELEASE":    "HIGH",
				"INJURY_MEDICAL":    "HIGH",
				"COLLISION_VEHICLE": "HIGH",
			},
			PolicyHeavyEvents: []string{
				"FIRE_EXPLOSION",
				"HAZMAT_RELEASE",
				"INJURY_MEDICAL",
				"TRAPPED_LOST",
			},
		},
		Weights: Weights{
			Leakage:    100,
			Problem:    80,
			Duplicate:  50,
			Policy:     30,
			Escalation: 20,
			Keyword:    10,
		},
		Queue: Queue{Max: 0},
	}
}
