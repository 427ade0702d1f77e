package catalog

import "medifind/internal/domain/entity"

var seedMedicines = []entity.Medicine{
	{
		ID:           "med_k_001",
		Name:         "Crocin Pain Relief Tablets (15 count)",
		Category:     "Pain Relief",
		Image:        "med_crocin",
		Description:  "Provides effective relief from headache, body ache, and fever. Contains Paracetamol.",
		Manufacturer: "GSK Consumer Healthcare",
		Dosage:       "1-2 tablets every 4-6 hours as needed, max 8 tablets in 24 hours for adults.",
		SideEffects:  "Generally well-tolerated. Rare cases of allergic reactions.",
		Storage:      "Store in a cool, dry place below 30°C.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_001_1", PharmacyName: "Apollo Pharmacy", Stock: 75, Location: "MG Road, Bangalore, Karnataka 560001", Distance: "0.8 km", Phone: "080-25581234", Email: "mgroad.blr@apollopharmacy.in", Coordinates: &entity.Coordinates{Lat: 12.9751, Lng: 77.6068}},
			{PharmacyID: "ph_k_001_2", PharmacyName: "MedPlus Pharmacy", Stock: 40, Location: "100 Feet Road, Indiranagar, Bangalore, Karnataka 560038", Distance: "1.5 km", Phone: "080-41267890", Email: "indiranagar.blr@medplusindia.com", Coordinates: &entity.Coordinates{Lat: 12.9718, Lng: 77.6385}},
		},
	},
	{
		ID:           "med_k_002",
		Name:         "Amoxycillin 500mg Capsules (10 count)",
		Category:     "Antibiotic",
		Image:        "med_amoxycillin",
		Description:  "Prescription antibiotic for treating bacterial infections. Complete the full course as prescribed.",
		Manufacturer: "Cipla Ltd.",
		Dosage:       "As prescribed by doctor. Typically 1 capsule 2-3 times a day.",
		SideEffects:  "Nausea, diarrhea, rash. Consult doctor if severe.",
		Storage:      "Store at room temperature, away from moisture and direct sunlight.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_002_1", PharmacyName: "Wellness Forever", Stock: 30, Location: "1st Main Road, Koramangala 8th Block, Bangalore, Karnataka 560095", Distance: "2.2 km", Phone: "080-25505678", Email: "koramangala.blr@wellnessforever.com", Coordinates: &entity.Coordinates{Lat: 12.9352, Lng: 77.6245}},
			{PharmacyID: "ph_k_002_2", PharmacyName: "Shree Medicals", Stock: 15, Location: "Near Bus Stand, Hubli, Karnataka 580020", Distance: "N/A", Phone: "0836-2261122", Email: "info@shreemedhubli.com", Coordinates: &entity.Coordinates{Lat: 15.3582, Lng: 75.1335}},
		},
	},
	{
		ID:           "med_k_003",
		Name:         "Cetirizine 10mg Tablets (10 count)",
		Category:     "Allergy Relief",
		Image:        "med_cetirizine",
		Description:  "Antihistamine for relief from allergy symptoms like sneezing, runny nose, and itchy eyes.",
		Manufacturer: "Dr. Reddy's Laboratories",
		Dosage:       "1 tablet daily for adults and children over 6 years.",
		SideEffects:  "Drowsiness (less common), dry mouth, headache.",
		Storage:      "Store below 25°C. Protect from light.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_003_1", PharmacyName: "Trust Pharmacy", Stock: 120, Location: "4th Block, Jayanagar, Bangalore, Karnataka 560011", Distance: "1.0 km", Phone: "080-26631122", Email: "jayanagar.blr@trustpharmacy.in", Coordinates: &entity.Coordinates{Lat: 12.9293, Lng: 77.5824}},
			{PharmacyID: "ph_k_003_2", PharmacyName: "Apollo Pharmacy", Stock: 60, Location: "Sampige Road, Malleshwaram, Bangalore, Karnataka 560003", Distance: "3.5 km", Phone: "080-23345678", Email: "malleshwaram.blr@apollopharmacy.in", Coordinates: &entity.Coordinates{Lat: 12.9988, Lng: 77.5700}},
			{PharmacyID: "ph_k_003_3", PharmacyName: "Mangalore Medicals", Stock: 50, Location: "KS Rao Road, Mangalore, Karnataka 575001", Distance: "N/A", Phone: "0824-2445566", Email: "contact@mangaloremeds.com", Coordinates: &entity.Coordinates{Lat: 12.8691, Lng: 74.8436}},
		},
	},
	{
		ID:           "med_k_004",
		Name:         "Pantoprazole 40mg Tablets (10 count)",
		Category:     "Acid Reflux",
		Image:        "med_pantoprazole",
		Description:  "Proton pump inhibitor to reduce stomach acid. Used for heartburn and acid reflux.",
		Manufacturer: "Sun Pharmaceutical Industries Ltd.",
		Dosage:       "1 tablet daily, preferably before breakfast.",
		SideEffects:  "Headache, diarrhea, dizziness (usually mild).",
		Storage:      "Store in a cool, dry place.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_004_1", PharmacyName: "MedPlus Pharmacy", Stock: 20, Location: "ITPL Main Road, Whitefield, Bangalore, Karnataka 560066", Distance: "5.0 km", Phone: "080-40987654", Email: "whitefield.blr@medplusindia.com", Coordinates: &entity.Coordinates{Lat: 12.9698, Lng: 77.7500}},
			{PharmacyID: "ph_k_004_2", PharmacyName: "Belgaum Pharma", Stock: 35, Location: "College Road, Belgaum, Karnataka 590001", Distance: "N/A", Phone: "0831-2423344", Email: "sales@belgaumpharma.com", Coordinates: &entity.Coordinates{Lat: 15.8522, Lng: 74.5000}},
		},
	},
	{
		ID:           "med_k_005",
		Name:         "Combiflam Tablets (20 count)",
		Category:     "Pain Relief",
		Image:        "med_combiflam",
		Description:  "Combination of Ibuprofen and Paracetamol for effective relief from pain and inflammation.",
		Manufacturer: "Sanofi India Ltd.",
		Dosage:       "1 tablet up to 3 times a day after meals.",
		SideEffects:  "Indigestion, nausea. Not for long-term use without medical advice.",
		Storage:      "Store below 25°C.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_005_1", PharmacyName: "Wellness Forever", Stock: 80, Location: "27th Main Road, HSR Layout, Bangalore, Karnataka 560102", Distance: "2.8 km", Phone: "080-25741234", Email: "hsr.blr@wellnessforever.com", Coordinates: &entity.Coordinates{Lat: 12.9121, Lng: 77.6446}},
			{PharmacyID: "ph_k_005_2", PharmacyName: "Trust Pharmacy", Stock: 55, Location: "Bannerghatta Main Road, Bangalore, Karnataka 560076", Distance: "4.1 km", Phone: "080-26589012", Email: "bannerghatta.blr@trustpharmacy.in", Coordinates: &entity.Coordinates{Lat: 12.8765, Lng: 77.5960}},
			{PharmacyID: "ph_k_005_3", PharmacyName: "Mysore Medical Store", Stock: 45, Location: "Sayyaji Rao Road, Mysore, Karnataka 570001", Distance: "N/A", Phone: "0821-2421122", Email: "query@mysoremeds.com", Coordinates: &entity.Coordinates{Lat: 12.3050, Lng: 76.6550}},
		},
	},
	{
		ID:           "med_k_006",
		Name:         "Asthalin Inhaler (200 MDI)",
		Category:     "Asthma Relief",
		Image:        "med_asthalin",
		Description:  "Salbutamol inhaler for quick relief from asthma symptoms and bronchospasm.",
		Manufacturer: "Cipla Ltd.",
		Dosage:       "1-2 puffs as needed for symptom relief. Follow doctor's advice.",
		SideEffects:  "Tremors, palpitations (usually temporary).",
		Storage:      "Store below 30°C. Do not freeze. Pressurized container.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_006_1", PharmacyName: "Apollo Pharmacy", Stock: 45, Location: "Hosur Road, Electronic City, Bangalore, Karnataka 560100", Distance: "6.5 km", Phone: "080-28523456", Email: "ecity.blr@apollopharmacy.in", Coordinates: &entity.Coordinates{Lat: 12.8452, Lng: 77.6602}},
			{PharmacyID: "ph_k_006_2", PharmacyName: "Gulbarga Chemists", Stock: 25, Location: "Super Market, Gulbarga, Karnataka 585101", Distance: "N/A", Phone: "08472-223344", Email: "orders@gulbargachem.com", Coordinates: &entity.Coordinates{Lat: 17.3291, Lng: 76.8340}},
		},
	},
	{
		ID:           "med_k_007",
		Name:         "Vicks Action 500 Advanced Tablets (10 count)",
		Category:     "Cold & Flu",
		Image:        "med_vicks_action_500",
		Description:  "Relief from multiple cold and flu symptoms like headache, fever, nasal congestion.",
		Manufacturer: "Procter & Gamble",
		Dosage:       "1 tablet every 4-6 hours.",
		SideEffects:  "Drowsiness may occur.",
		Storage:      "Store in a cool, dry place.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_007_1", PharmacyName: "MedPlus Pharmacy", Stock: 90, Location: "Dr. Rajkumar Road, Rajajinagar, Bangalore, Karnataka 560010", Distance: "3.0 km", Phone: "080-23129876", Email: "rajajinagar.blr@medplusindia.com", Coordinates: &entity.Coordinates{Lat: 12.9940, Lng: 77.5520}},
			{PharmacyID: "ph_k_007_2", PharmacyName: "Wellness Forever", Stock: 65, Location: "DVG Road, Basavanagudi, Bangalore, Karnataka 560004", Distance: "2.5 km", Phone: "080-26675432", Email: "basavanagudi.blr@wellnessforever.com", Coordinates: &entity.Coordinates{Lat: 12.9420, Lng: 77.5713}},
		},
	},
	{
		ID:           "med_k_008",
		Name:         "Digene Gel (Mint Flavour, 200ml)",
		Category:     "Antacid",
		Image:        "med_digene",
		Description:  "Provides quick relief from acidity, heartburn, and gas. Mint flavour.",
		Manufacturer: "Abbott India Ltd.",
		Dosage:       "2 teaspoonfuls (10ml) after meals and at bedtime, or as directed by physician.",
		SideEffects:  "Rare, may cause constipation or diarrhea in some individuals.",
		Storage:      "Store at room temperature, away from direct sunlight. Shake well before use.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_008_1", PharmacyName: "Trust Pharmacy", Stock: 110, Location: "Outer Ring Road, JP Nagar, Bangalore, Karnataka 560078", Distance: "3.8 km", Phone: "080-26598765", Email: "jpnagar.blr@trustpharmacy.in", Coordinates: &entity.Coordinates{Lat: 12.9069, Lng: 77.5848}},
			{PharmacyID: "ph_k_008_2", PharmacyName: "Apollo Pharmacy", Stock: 70, Location: "80 Feet Road, Koramangala 5th Block, Bangalore, Karnataka 560034", Distance: "2.0 km", Phone: "080-25531111", Email: "koramangala5.blr@apollopharmacy.in", Coordinates: &entity.Coordinates{Lat: 12.9345, Lng: 77.6269}},
		},
	},
	{
		ID:           "med_k_009",
		Name:         "Benadryl Cough Syrup (100ml)",
		Category:     "Cough Relief",
		Image:        "med_benadryl",
		Description:  "Effective relief from cough and sore throat. May cause drowsiness.",
		Manufacturer: "Johnson & Johnson",
		Dosage:       "Adults: 10ml every 4 hours. Children (6-12 yrs): 5ml every 4 hours.",
		SideEffects:  "Drowsiness, dizziness, dry mouth.",
		Storage:      "Store at room temperature, protect from light.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_009_1", PharmacyName: "MedPlus Pharmacy", Stock: 50, Location: "Outer Ring Road, Marathahalli, Bangalore, Karnataka 560037", Distance: "4.5 km", Phone: "080-41156789", Email: "marathahalli.blr@medplusindia.com", Coordinates: &entity.Coordinates{Lat: 12.9592, Lng: 77.6974}},
			{PharmacyID: "ph_k_009_2", PharmacyName: "Davangere Drugs", Stock: 60, Location: "PB Road, Davangere, Karnataka 577002", Distance: "N/A", Phone: "08192-232323", Email: "davangere.drugs@mail.com", Coordinates: &entity.Coordinates{Lat: 14.4644, Lng: 75.9218}},
		},
	},
	{
		ID:           "med_k_010",
		Name:         "Volini Pain Relief Spray (55g)",
		Category:     "Topical Pain Relief",
		Image:        "med_volini",
		Description:  "Topical spray for quick relief from muscle pain, sprains, and joint pain.",
		Manufacturer: "Sun Pharmaceutical Industries Ltd.",
		Dosage:       "Spray on affected area 3-4 times a day.",
		SideEffects:  "Skin irritation or rash in rare cases.",
		Storage:      "Store in a cool place. Flammable, keep away from heat.",
		Availability: []entity.Availability{
			{PharmacyID: "ph_k_010_1", PharmacyName: "Wellness Forever", Stock: 70, Location: "16th Main Road, BTM Layout, Bangalore, Karnataka 560068", Distance: "3.2 km", Phone: "080-26781234", Email: "btm.blr@wellnessforever.com", Coordinates: &entity.Coordinates{Lat: 12.9166, Lng: 77.6101}},
			{PharmacyID: "ph_k_010_2", PharmacyName: "Trust Pharmacy", Stock: 40, Location: "New BEL Road, Hebbal, Bangalore, Karnataka 560094", Distance: "7.0 km", Phone: "080-23419876", Email: "hebbal.blr@trustpharmacy.in", Coordinates: &entity.Coordinates{Lat: 13.0358, Lng: 77.5970}},
		},
	},
}
