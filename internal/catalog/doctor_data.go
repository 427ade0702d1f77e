package catalog

import "medifind/internal/domain/entity"

var seedDoctors = []entity.Doctor{
	{
		ID:                "doc_k_001",
		Name:              "Dr. Priya Sharma",
		Specialty:         "Cardiologist",
		Rating:            4.8,
		Reviews:           152,
		Location:          "Manipal Hospital, HAL Airport Road, Bangalore, Karnataka",
		Image:             "doc_priya_sharma",
		Available:         true,
		Phone:             "080-2502-3888",
		Email:             "priya.sharma@manipal.com",
		Bio:               "Renowned cardiologist with 15+ years experience in interventional cardiology. Based in Bangalore.",
		Qualifications:    []string{"MBBS, MD (Cardiology)", "Fellowship in Interventional Cardiology (USA)"},
		WorkingHours:      "Mon-Fri: 10 AM - 6 PM",
		Services:          []string{"Angioplasty", "Echocardiogram", "Stress Test", "Pacemaker Implantation"},
		InsuranceAccepted: []string{"Star Health", "Apollo Munich", "ICICI Lombard"},
	},
	{
		ID:                "doc_k_002",
		Name:              "Dr. Arjun Reddy",
		Specialty:         "Pediatrician",
		Rating:            4.9,
		Reviews:           215,
		Location:          "Rainbow Children's Hospital, Marathahalli, Bangalore, Karnataka",
		Image:             "doc_arjun_reddy",
		Available:         true,
		Phone:             "080-4170-4170",
		Email:             "arjun.reddy@rainbow.com",
		Bio:               "Compassionate pediatrician specializing in neonatal care and child development. Serving families in Bangalore.",
		Qualifications:    []string{"MBBS, DNB (Pediatrics)", "Fellowship in Neonatology"},
		WorkingHours:      "Mon-Sat: 9 AM - 7 PM",
		Services:          []string{"Vaccinations", "Well-child visits", "Neonatal ICU", "Developmental screenings"},
		InsuranceAccepted: []string{"Bajaj Allianz", "HDFC Ergo", "Max Bupa"},
	},
	{
		ID:                "doc_k_003",
		Name:              "Dr. Sneha Patel",
		Specialty:         "Dermatologist",
		Rating:            4.7,
		Reviews:           105,
		Location:          "Fortis Hospital, Bannerghatta Road, Bangalore, Karnataka",
		Image:             "doc_sneha_patel",
		Available:         false,
		Phone:             "080-6621-4444",
		Email:             "sneha.patel@fortis.com",
		Bio:               "Expert in cosmetic dermatology and skin conditions. Practices in South Bangalore.",
		Qualifications:    []string{"MBBS, MD (Dermatology, Venereology & Leprosy)"},
		WorkingHours:      "Tue-Sat: 11 AM - 5 PM",
		Services:          []string{"Acne Treatment", "Laser Hair Removal", "Chemical Peels", "Skin Cancer Screening"},
		InsuranceAccepted: []string{"United India", "New India Assurance", "Religare"},
	},
	{
		ID:                "doc_k_004",
		Name:              "Dr. Vikram Singh",
		Specialty:         "Neurologist",
		Rating:            4.6,
		Reviews:           85,
		Location:          "Apollo Hospitals, Jayanagar, Bangalore, Karnataka",
		Image:             "doc_vikram_singh",
		Available:         true,
		Phone:             "080-2630-4050",
		Email:             "vikram.singh@apollo.com",
		Bio:               "Specialist in treating complex neurological disorders. Located in Jayanagar, Bangalore.",
		Qualifications:    []string{"MBBS, DM (Neurology)"},
		WorkingHours:      "Mon-Fri: 9 AM - 5 PM, Sat: 9 AM - 1 PM",
		Services:          []string{"EEG", "EMG", "Stroke Management", "Epilepsy Treatment"},
		InsuranceAccepted: []string{"Star Health", "ICICI Lombard", "HDFC Ergo"},
	},
	{
		ID:                "doc_k_005",
		Name:              "Dr. Ananya Rao",
		Specialty:         "Oncologist",
		Rating:            4.9,
		Reviews:           160,
		Location:          "HCG Cancer Centre, Kalinga Rao Road, Bangalore, Karnataka",
		Image:             "doc_ananya_rao",
		Available:         true,
		Phone:             "080-4020-6000",
		Email:             "ananya.rao@hcg.com",
		Bio:               "Leading oncologist with focus on personalized cancer care. Central Bangalore.",
		Qualifications:    []string{"MBBS, MD (Radiation Oncology)", "Fellowship in Clinical Oncology (UK)"},
		WorkingHours:      "Mon-Sat: 10 AM - 6 PM",
		Services:          []string{"Chemotherapy", "Radiation Therapy", "Immunotherapy", "Palliative Care"},
		InsuranceAccepted: []string{"Max Bupa", "Apollo Munich", "Bajaj Allianz"},
	},
	{
		ID:                "doc_k_006",
		Name:              "Dr. Rohan Desai",
		Specialty:         "Orthopedist",
		Rating:            4.5,
		Reviews:           120,
		Location:          "Sakra World Hospital, Devarabisanahalli, Bangalore, Karnataka",
		Image:             "doc_rohan_desai",
		Available:         true,
		Phone:             "080-4969-4969",
		Email:             "rohan.desai@sakra.com",
		Bio:               "Specializing in joint replacement and sports injuries. Serving Outer Ring Road area, Bangalore.",
		Qualifications:    []string{"MBBS, MS (Orthopedics)"},
		WorkingHours:      "Mon-Fri: 9 AM - 5 PM",
		Services:          []string{"Knee Replacement", "Hip Replacement", "Arthroscopy", "Trauma Care"},
		InsuranceAccepted: []string{"Religare", "Star Health", "United India"},
	},
	{
		ID:                "doc_k_007",
		Name:              "Dr. Meera Krishnan",
		Specialty:         "Gynecologist",
		Rating:            4.8,
		Reviews:           190,
		Location:          "Cloudnine Hospital, Old Airport Road, Bangalore, Karnataka",
		Image:             "doc_meera_krishnan",
		Available:         true,
		Phone:             "1860-108-9999",
		Email:             "meera.krishnan@cloudnine.com",
		Bio:               "Experienced gynecologist providing comprehensive women's health services in Bangalore.",
		Qualifications:    []string{"MBBS, DGO, DNB (Obstetrics & Gynecology)"},
		WorkingHours:      "Mon-Sat: 10 AM - 7 PM",
		Services:          []string{"Prenatal Care", "Delivery Services", "Infertility Treatment", "Menopause Management"},
		InsuranceAccepted: []string{"ICICI Lombard", "HDFC Ergo", "New India Assurance"},
	},
	{
		ID:                "doc_k_008",
		Name:              "Dr. Sameer Gupta",
		Specialty:         "Psychiatrist",
		Rating:            4.7,
		Reviews:           95,
		Location:          "NIMHANS, Hosur Road, Bangalore, Karnataka",
		Image:             "doc_sameer_gupta",
		Available:         false,
		Phone:             "080-2699-5000",
		Email:             "sameer.gupta@nimhans.ac.in",
		Bio:               "Consultant psychiatrist at NIMHANS, Bangalore, focusing on mental wellness.",
		Qualifications:    []string{"MBBS, MD (Psychiatry)"},
		WorkingHours:      "By Appointment",
		Services:          []string{"Counseling", "Therapy Sessions", "Mood Disorder Treatment", "Anxiety Management"},
		InsuranceAccepted: []string{"Government Schemes", "Limited Private Insurance"},
	},
	{
		ID:                "doc_k_009",
		Name:              "Dr. Divya Nair",
		Specialty:         "Endocrinologist",
		Rating:            4.6,
		Reviews:           70,
		Location:          "Aster CMI Hospital, Hebbal, Bangalore, Karnataka",
		Image:             "doc_divya_nair",
		Available:         true,
		Phone:             "080-4342-0100",
		Email:             "divya.nair@aster.com",
		Bio:               "Specialist in diabetes and thyroid disorders. Located in Hebbal, Bangalore.",
		Qualifications:    []string{"MBBS, DM (Endocrinology)"},
		WorkingHours:      "Mon-Fri: 10 AM - 4 PM",
		Services:          []string{"Diabetes Management", "Thyroid Disorder Treatment", "Hormone Therapy", "PCOS Management"},
		InsuranceAccepted: []string{"Star Health", "Max Bupa", "Apollo Munich"},
	},
	{
		ID:                "doc_k_010",
		Name:              "Dr. Karthik Iyer",
		Specialty:         "Urologist",
		Rating:            4.4,
		Reviews:           88,
		Location:          "Columbia Asia Hospital, Yeshwanthpur, Bangalore, Karnataka",
		Image:             "doc_karthik_iyer",
		Available:         true,
		Phone:             "080-6165-6666",
		Email:             "karthik.iyer@columbiaasia.com",
		Bio:               "Expert in urological conditions and minimally invasive surgery. Serving Yeshwanthpur, Bangalore.",
		Qualifications:    []string{"MBBS, MS (General Surgery), MCh (Urology)"},
		WorkingHours:      "Mon, Wed, Fri: 2 PM - 6 PM",
		Services:          []string{"Kidney Stone Treatment", "Prostate Health", "Urinary Incontinence", "Male Infertility"},
		InsuranceAccepted: []string{"Bajaj Allianz", "Religare", "United India"},
	},
	{
		ID:                "doc_k_011",
		Name:              "Dr. Lakshmi Murthy",
		Specialty:         "General Physician",
		Rating:            4.7,
		Reviews:           250,
		Location:          "St. John's Medical College Hospital, Koramangala, Bangalore, Karnataka",
		Image:             "doc_lakshmi_murthy",
		Available:         true,
		Phone:             "080-2206-5000",
		Email:             "lakshmi.murthy@stjohns.in",
		Bio:               "Highly-rated GP for all common ailments. Koramangala, Bangalore.",
		Qualifications:    []string{"MBBS, MD (General Medicine)"},
		WorkingHours:      "Mon-Sat: 9 AM - 1 PM, 3 PM - 6 PM",
		Services:          []string{"General Checkups", "Fever Treatment", "Infectious Diseases", "Chronic Disease Management"},
		InsuranceAccepted: []string{"Most Major Insurances", "Government Schemes"},
	},
	{
		ID:                "doc_k_012",
		Name:              "Dr. Rajesh Kumar",
		Specialty:         "Pulmonologist",
		Rating:            4.6,
		Reviews:           115,
		Location:          "BGS Gleneagles Global Hospitals, Kengeri, Bangalore, Karnataka",
		Image:             "doc_rajesh_kumar",
		Available:         true,
		Phone:             "080-2625-5555",
		Email:             "rajesh.kumar@bgsgleneagles.com",
		Bio:               "Specialist in respiratory diseases and critical care. Kengeri, Bangalore.",
		Qualifications:    []string{"MBBS, MD (Pulmonary Medicine)"},
		WorkingHours:      "Mon-Fri: 11 AM - 5 PM",
		Services:          []string{"Asthma Management", "COPD Treatment", "Bronchoscopy", "Sleep Apnea Diagnosis"},
		InsuranceAccepted: []string{"Star Health", "ICICI Lombard", "HDFC Ergo"},
	},
	{
		ID:                "doc_k_013",
		Name:              "Dr. Sunita Reddy",
		Specialty:         "Ophthalmologist",
		Rating:            4.8,
		Reviews:           140,
		Location:          "Narayana Nethralaya, Rajajinagar, Bangalore, Karnataka",
		Image:             "doc_sunita_reddy",
		Available:         true,
		Phone:             "080-6612-1300",
		Email:             "sunita.reddy@narayananethralaya.org",
		Bio:               "Leading eye surgeon specializing in cataract and refractive surgery. Rajajinagar, Bangalore.",
		Qualifications:    []string{"MBBS, MS (Ophthalmology), FICO"},
		WorkingHours:      "Mon-Sat: 9 AM - 6 PM",
		Services:          []string{"Cataract Surgery", "LASIK", "Glaucoma Treatment", "Retina Checkup"},
		InsuranceAccepted: []string{"Max Bupa", "Apollo Munich", "Religare"},
	},
	{
		ID:                "doc_k_014",
		Name:              "Dr. Alok Jain",
		Specialty:         "ENT Specialist",
		Rating:            4.5,
		Reviews:           100,
		Location:          "Vikram Hospital, Millers Road, Bangalore, Karnataka",
		Image:             "doc_alok_jain",
		Available:         false,
		Phone:             "080-4206-7878",
		Email:             "alok.jain@vikramhospital.com",
		Bio:               "Experienced ENT surgeon for ear, nose, and throat conditions. Central Bangalore.",
		Qualifications:    []string{"MBBS, MS (ENT)"},
		WorkingHours:      "Tue, Thu, Sat: 3 PM - 7 PM",
		Services:          []string{"Tonsillectomy", "Sinus Surgery", "Hearing Aid Fitting", "Vertigo Treatment"},
		InsuranceAccepted: []string{"United India", "New India Assurance", "Star Health"},
	},
	{
		ID:                "doc_k_015",
		Name:              "Dr. Geetha Rao",
		Specialty:         "Rheumatologist",
		Rating:            4.7,
		Reviews:           80,
		Location:          "Hosmat Hospital, Magrath Road, Bangalore, Karnataka",
		Image:             "doc_geetha_rao",
		Available:         true,
		Phone:             "080-2559-3796",
		Email:             "geetha.rao@hosmatnet.com",
		Bio:               "Specialist in arthritis and autoimmune diseases. Practices in Bangalore.",
		Qualifications:    []string{"MBBS, MD (General Medicine), DM (Rheumatology)"},
		WorkingHours:      "Mon, Wed, Fri: 10 AM - 2 PM",
		Services:          []string{"Rheumatoid Arthritis Management", "Lupus Treatment", "Gout Management", "Fibromyalgia Care"},
		InsuranceAccepted: []string{"ICICI Lombard", "HDFC Ergo", "Bajaj Allianz"},
	},
	{
		ID:                "doc_k_016",
		Name:              "Dr. Suresh Gowda",
		Specialty:         "Dentist",
		Rating:            4.9,
		Reviews:           180,
		Location:          "Vasan Dental Care, Mysore Road, Bangalore, Karnataka",
		Image:             "doc_suresh_gowda",
		Available:         true,
		Phone:             "080-4111-2222",
		Email:             "suresh.gowda@vasandental.com",
		Bio:               "Expert general and cosmetic dentist with a gentle approach. Mysore Road, Bangalore.",
		Qualifications:    []string{"BDS, MDS (Prosthodontics)"},
		WorkingHours:      "Mon-Sat: 9 AM - 8 PM",
		Services:          []string{"Dental Implants", "Root Canal Treatment", "Teeth Whitening", "Smile Makeovers"},
		InsuranceAccepted: []string{"Star Health", "Religare", "Cigna TTK"},
	},
	{
		ID:                "doc_k_017",
		Name:              "Dr. Kavita Patil",
		Specialty:         "Dietitian/Nutritionist",
		Rating:            4.7,
		Reviews:           90,
		Location:          "Healthy Living Clinic, Dollars Colony, Bangalore, Karnataka",
		Image:             "doc_kavita_patil",
		Available:         true,
		Phone:             "080-3344-5566",
		Email:             "kavita.patil@healthyliving.com",
		Bio:               "Certified dietitian focusing on weight management and therapeutic diets. Dollars Colony, Bangalore.",
		Qualifications:    []string{"BSc (Nutrition), MSc (Dietetics)", "Registered Dietitian (RD)"},
		WorkingHours:      "Mon-Fri: 10 AM - 5 PM (By Appointment)",
		Services:          []string{"Weight Loss Programs", "Diabetes Diet Counseling", "Sports Nutrition", "PCOD/PCOS Diet Plans"},
		InsuranceAccepted: []string{"Not Typically Covered", "Check with Provider"},
	},
	{
		ID:                "doc_k_018",
		Name:              "Dr. Anand Kumar",
		Specialty:         "Physiotherapist",
		Rating:            4.6,
		Reviews:           130,
		Location:          "Active Life Physiotherapy, Bellandur, Bangalore, Karnataka",
		Image:             "doc_anand_kumar",
		Available:         true,
		Phone:             "080-7788-9900",
		Email:             "anand.kumar@activelifephysio.com",
		Bio:               "Experienced physiotherapist specializing in sports injuries and post-operative rehabilitation. Bellandur, Bangalore.",
		Qualifications:    []string{"BPT (Bachelor of Physiotherapy)", "MPT (Master of Physiotherapy - Orthopedics)"},
		WorkingHours:      "Mon-Sat: 8 AM - 7 PM",
		Services:          []string{"Manual Therapy", "Exercise Prescription", "Electrotherapy", "Sports Taping"},
		InsuranceAccepted: []string{"Apollo Munich", "HDFC Ergo", "Some Corporate Tie-ups"},
	},
}
