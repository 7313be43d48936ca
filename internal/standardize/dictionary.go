package standardize

// dictEntry pairs a cleaned name variant with its canonical display name.
// The dictionary is an ordered slice rather than a map so that fuzzy-match
// ties always break toward the first-listed variant.
type dictEntry struct {
	variant   string
	canonical string
}

// insurerDictionary holds every known cleaned-name variant for the life
// insurers appearing in the handbook, as the names appear in source cells
// (lowercased). Variants are normalized through cleanName at init.
var insurerDictionary = []dictEntry{
	{"life insurance corporation of india", "LIC"},
	{"lic of india", "LIC"},
	{"lic", "LIC"},
	{"aditya birla sunlife insurance company ltd", "ABSLI"},
	{"aditya birla sun life insurance company ltd", "ABSLI"},
	{"aditya birla sunlife", "ABSLI"},
	{"aditya birla sun life", "ABSLI"},
	{"aditya birla sunlife insurance co ltd", "ABSLI"},
	{"icici prudential life insurance company ltd", "ICICI Pru Life"},
	{"icici prudential life insurance", "ICICI Pru Life"},
	{"icici pru life", "ICICI Pru Life"},
	{"sbi life insurance company ltd", "SBI Life"},
	{"sbi life insurance", "SBI Life"},
	{"sbi life", "SBI Life"},
	{"max life insurance company ltd", "MaxLife"},
	{"max life insurance", "MaxLife"},
	{"maxlife insurance company ltd", "MaxLife"},
	{"maxlife", "MaxLife"},
	{"tata aia life insurance company ltd", "Tata AIA"},
	{"tata aia life insurance", "Tata AIA"},
	{"tata aia", "Tata AIA"},
	{"pnb metlife india insurance company ltd", "PNB Metlife"},
	{"pnb metlife india insurance", "PNB Metlife"},
	{"pnb metlife", "PNB Metlife"},
	{"canara hsbc obc life insurance company ltd", "Canara HSBC"},
	{"canara hsbc life insurance company ltd", "Canara HSBC"},
	{"canara hsbc life insurance", "Canara HSBC"},
	{"canara hsbc", "Canara HSBC"},
	{"hdfc life insurance company ltd", "HDFC Life"},
	{"hdfc life insurance", "HDFC Life"},
	{"hdfc life", "HDFC Life"},
	{"kotak mahindra life insurance ltd", "Kotak Life"},
	{"kotak mahindra life insurance", "Kotak Life"},
	{"kotak life", "Kotak Life"},
	{"bajaj allianz life insurance company ltd", "Bajaj Allianz Life"},
	{"bajaj allianz life insurance", "Bajaj Allianz Life"},
	{"bajaj allianz life", "Bajaj Allianz Life"},
	{"bharti axa life insurance company ltd", "Bharti AXA Life"},
	{"bharti axa life insurance", "Bharti AXA Life"},
	{"bharti axa life", "Bharti AXA Life"},
	{"exide life insurance company ltd", "Exide Life"},
	{"exide life insurance", "Exide Life"},
	{"exide life", "Exide Life"},
	{"aviva life insurance company india ltd", "Aviva Life"},
	{"aviva life insurance", "Aviva Life"},
	{"aviva life", "Aviva Life"},
	{"ageas federal life insurance company ltd", "Ageas Federal Life"},
	{"ageas federal life insurance", "Ageas Federal Life"},
	{"ageas federal life", "Ageas Federal Life"},
	{"future generali india life insurance company ltd", "Future Generali Life"},
	{"future generali india life insurance", "Future Generali Life"},
	{"future generali life", "Future Generali Life"},
	{"edelweiss tokio life insurance company ltd", "Edelweiss Tokio Life"},
	{"edelweiss tokio life insurance", "Edelweiss Tokio Life"},
	{"edelweiss tokio life", "Edelweiss Tokio Life"},
	{"indiafirst life insurance company ltd", "IndiaFirst Life"},
	{"indiafirst life insurance", "IndiaFirst Life"},
	{"indiafirst life", "IndiaFirst Life"},
	{"bandhan life insurance company ltd", "Bandhan Life"},
	{"bandhan life insurance ltd", "Bandhan Life"},
	{"bandhan life insurance", "Bandhan Life"},
	{"bandhan life", "Bandhan Life"},
	{"acko life insurance ltd", "Acko Life"},
	{"acko life insurance", "Acko Life"},
	{"acko life", "Acko Life"},
	{"credit access life", "Credit Access Life"},
	{"creditaccess life insurance ltd", "Credit Access Life"},
	{"go digit life", "Go Digit Life"},
	{"go digit life insurance", "Go Digit Life"},
	{"go digit life insurance limited", "Go Digit Life"},
	{"pramerica life insurance ltd", "Pramerica Life"},
	{"pramerica life insurance", "Pramerica Life"},
	{"pramerica life", "Pramerica Life"},
	{"reliance nippon life insurance company ltd", "Reliance Nippon Life"},
	{"reliance nippon life insurance", "Reliance Nippon Life"},
	{"reliance nippon life", "Reliance Nippon Life"},
	{"sahara india life insurance company ltd", "Sahara India Life"},
	{"sahara india life insurance", "Sahara India Life"},
	{"sahara india life", "Sahara India Life"},
	{"shriram life insurance company ltd", "Shriram Life"},
	{"shriram life insurance", "Shriram Life"},
	{"shriram life", "Shriram Life"},
	{"star union dai-ichi life insurance company ltd", "Star Union Dai-ichi Life"},
	{"star union dai-ichi life insurance", "Star Union Dai-ichi Life"},
	{"star union dai-ichi life", "Star Union Dai-ichi Life"},
	{"aegon life insurance company ltd", "Aegon Life"},
	{"aegon life insurance", "Aegon Life"},
	{"aegon life", "Aegon Life"},
}

// cleanedDictionary is insurerDictionary with every variant passed through
// cleanName, deduplicated in order. Raw names are cleaned before lookup, so
// matching against cleaned variants keeps exact hits exact and keeps fuzzy
// scores free of suffix noise ("... company ltd" vs "... company").
var cleanedDictionary = func() []dictEntry {
	entries := make([]dictEntry, 0, len(insurerDictionary))
	seen := make(map[string]struct{}, len(insurerDictionary))
	for _, e := range insurerDictionary {
		cleaned := cleanName(e.variant)
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		entries = append(entries, dictEntry{variant: cleaned, canonical: e.canonical})
	}
	return entries
}()

// insurerExact is the exact-lookup index over cleanedDictionary.
var insurerExact = func() map[string]string {
	m := make(map[string]string, len(cleanedDictionary))
	for _, e := range cleanedDictionary {
		m[e.variant] = e.canonical
	}
	return m
}()
