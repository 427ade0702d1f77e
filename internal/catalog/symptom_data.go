package catalog

import "medifind/internal/domain/entity"

var symptomCategories = []entity.SymptomCategory{
	{Key: "common", Symptoms: []entity.Symptom{
		{ID: "s_fever", Name: "Fever", RelatedSpecialties: []string{"General Physician", "Pediatrician"}},
		{ID: "s_cough", Name: "Cough", RelatedSpecialties: []string{"General Physician", "Pulmonologist", "Pediatrician"}},
		{ID: "s_headache", Name: "Headache", RelatedSpecialties: []string{"General Physician", "Neurologist"}},
		{ID: "s_sore_throat", Name: "Sore Throat", RelatedSpecialties: []string{"General Physician", "ENT Specialist"}},
		{ID: "s_fatigue", Name: "Fatigue / Tiredness", RelatedSpecialties: []string{"General Physician"}},
		{ID: "s_body_ache", Name: "Body Ache / Muscle Pain", RelatedSpecialties: []string{"General Physician", "Orthopedist", "Rheumatologist"}},
		{ID: "s_runny_nose", Name: "Runny or Stuffy Nose", RelatedSpecialties: []string{"General Physician", "ENT Specialist"}},
		{ID: "s_nausea", Name: "Nausea / Vomiting", RelatedSpecialties: []string{"General Physician", "Gastroenterologist"}},
		{ID: "s_diarrhea", Name: "Diarrhea", RelatedSpecialties: []string{"General Physician", "Gastroenterologist"}},
		{ID: "s_abdominal_pain", Name: "Abdominal Pain", RelatedSpecialties: []string{"General Physician", "Gastroenterologist", "Gynecologist"}},
	}},
	{Key: "cardiovascular", Symptoms: []entity.Symptom{
		{ID: "s_chest_pain", Name: "Chest Pain or Discomfort", RelatedSpecialties: []string{"Cardiologist", "General Physician"}},
		{ID: "s_shortness_of_breath", Name: "Shortness of Breath", RelatedSpecialties: []string{"Cardiologist", "Pulmonologist", "General Physician"}},
		{ID: "s_palpitations", Name: "Palpitations (Irregular Heartbeat)", RelatedSpecialties: []string{"Cardiologist"}},
		{ID: "s_dizziness", Name: "Dizziness / Lightheadedness", RelatedSpecialties: []string{"General Physician", "Neurologist", "Cardiologist"}},
		{ID: "s_swelling_legs", Name: "Swelling in Legs/Ankles", RelatedSpecialties: []string{"Cardiologist", "General Physician", "Nephrologist"}},
	}},
	{Key: "respiratory", Symptoms: []entity.Symptom{
		{ID: "s_difficulty_breathing", Name: "Difficulty Breathing", RelatedSpecialties: []string{"Pulmonologist", "Cardiologist", "General Physician"}},
		{ID: "s_wheezing", Name: "Wheezing", RelatedSpecialties: []string{"Pulmonologist", "General Physician"}},
		{ID: "s_chronic_cough", Name: "Chronic Cough (long-lasting)", RelatedSpecialties: []string{"Pulmonologist", "General Physician"}},
	}},
	{Key: "neurological", Symptoms: []entity.Symptom{
		{ID: "s_severe_headache", Name: "Severe or Persistent Headache", RelatedSpecialties: []string{"Neurologist", "General Physician"}},
		{ID: "s_migraine", Name: "Migraine", RelatedSpecialties: []string{"Neurologist"}},
		{ID: "s_seizures", Name: "Seizures", RelatedSpecialties: []string{"Neurologist"}},
		{ID: "s_numbness_tingling", Name: "Numbness or Tingling", RelatedSpecialties: []string{"Neurologist", "Orthopedist"}},
		{ID: "s_memory_loss", Name: "Memory Loss / Confusion", RelatedSpecialties: []string{"Neurologist", "Psychiatrist", "General Physician"}},
		{ID: "s_tremors", Name: "Tremors / Shaking", RelatedSpecialties: []string{"Neurologist"}},
	}},
	{Key: "dermatological", Symptoms: []entity.Symptom{
		{ID: "s_skin_rash", Name: "Skin Rash or Itching", RelatedSpecialties: []string{"Dermatologist", "General Physician"}},
		{ID: "s_acne", Name: "Acne / Pimples", RelatedSpecialties: []string{"Dermatologist"}},
		{ID: "s_hair_loss", Name: "Hair Loss", RelatedSpecialties: []string{"Dermatologist", "Endocrinologist"}},
		{ID: "s_mole_changes", Name: "Changes in Moles or Skin Lesions", RelatedSpecialties: []string{"Dermatologist", "Oncologist"}},
	}},
	{Key: "gastrointestinal", Symptoms: []entity.Symptom{
		{ID: "s_heartburn", Name: "Heartburn / Acid Reflux", RelatedSpecialties: []string{"Gastroenterologist", "General Physician"}},
		{ID: "s_constipation", Name: "Constipation", RelatedSpecialties: []string{"Gastroenterologist", "General Physician"}},
		{ID: "s_bloating", Name: "Bloating / Gas", RelatedSpecialties: []string{"Gastroenterologist", "General Physician"}},
		{ID: "s_blood_in_stool", Name: "Blood in Stool", RelatedSpecialties: []string{"Gastroenterologist", "General Physician"}},
	}},
	{Key: "musculoskeletal", Symptoms: []entity.Symptom{
		{ID: "s_joint_pain", Name: "Joint Pain / Swelling", RelatedSpecialties: []string{"Orthopedist", "Rheumatologist", "General Physician"}},
		{ID: "s_back_pain", Name: "Back Pain", RelatedSpecialties: []string{"Orthopedist", "Neurologist", "Physiotherapist"}},
		{ID: "s_neck_pain", Name: "Neck Pain", RelatedSpecialties: []string{"Orthopedist", "Neurologist", "Physiotherapist"}},
		{ID: "s_limited_motion", Name: "Limited Range of Motion", RelatedSpecialties: []string{"Orthopedist", "Physiotherapist"}},
	}},
	{Key: "ent", Symptoms: []entity.Symptom{
		{ID: "s_ear_pain", Name: "Ear Pain / Earache", RelatedSpecialties: []string{"ENT Specialist", "General Physician"}},
		{ID: "s_hearing_loss", Name: "Hearing Loss / Difficulty Hearing", RelatedSpecialties: []string{"ENT Specialist"}},
		{ID: "s_sinus_pain", Name: "Sinus Pain / Pressure", RelatedSpecialties: []string{"ENT Specialist", "General Physician"}},
		{ID: "s_hoarseness", Name: "Hoarseness / Voice Changes", RelatedSpecialties: []string{"ENT Specialist"}},
		{ID: "s_vertigo", Name: "Vertigo / Dizziness (spinning sensation)", RelatedSpecialties: []string{"ENT Specialist", "Neurologist"}},
	}},
	{Key: "mental_health", Symptoms: []entity.Symptom{
		{ID: "s_anxiety", Name: "Anxiety / Worry", RelatedSpecialties: []string{"Psychiatrist", "General Physician"}},
		{ID: "s_depression", Name: "Depression / Low Mood", RelatedSpecialties: []string{"Psychiatrist", "General Physician"}},
		{ID: "s_sleep_problems", Name: "Sleep Problems (Insomnia)", RelatedSpecialties: []string{"Psychiatrist", "General Physician", "Neurologist"}},
		{ID: "s_stress", Name: "High Stress Levels", RelatedSpecialties: []string{"Psychiatrist", "General Physician"}},
	}},
	{Key: "womens_health", Symptoms: []entity.Symptom{
		{ID: "s_menstrual_issues", Name: "Menstrual Irregularities / Pain", RelatedSpecialties: []string{"Gynecologist"}},
		{ID: "s_vaginal_discharge", Name: "Unusual Vaginal Discharge / Itching", RelatedSpecialties: []string{"Gynecologist"}},
		{ID: "s_breast_lump", Name: "Breast Lump / Pain", RelatedSpecialties: []string{"Gynecologist", "Oncologist", "General Physician"}},
	}},
	{Key: "mens_health", Symptoms: []entity.Symptom{
		{ID: "s_urinary_problems_men", Name: "Urinary Problems (Frequent, Painful)", RelatedSpecialties: []string{"Urologist"}},
		{ID: "s_erectile_dysfunction", Name: "Erectile Dysfunction", RelatedSpecialties: []string{"Urologist", "Endocrinologist"}},
	}},
	{Key: "endocrine", Symptoms: []entity.Symptom{
		{ID: "s_excessive_thirst_urination", Name: "Excessive Thirst or Urination", RelatedSpecialties: []string{"Endocrinologist", "General Physician"}},
		{ID: "s_unexplained_weight_change", Name: "Unexplained Weight Gain/Loss", RelatedSpecialties: []string{"Endocrinologist", "General Physician", "Dietitian/Nutritionist"}},
		{ID: "s_thyroid_problems", Name: "Thyroid Problems (Swelling, Fatigue)", RelatedSpecialties: []string{"Endocrinologist"}},
	}},
	{Key: "pediatric", Symptoms: []entity.Symptom{
		{ID: "s_fussy_infant", Name: "Fussy or Irritable Infant", RelatedSpecialties: []string{"Pediatrician"}},
		{ID: "s_delayed_development", Name: "Delayed Development Milestones", RelatedSpecialties: []string{"Pediatrician", "Neurologist"}},
		{ID: "s_rashes_children", Name: "Rashes in Children", RelatedSpecialties: []string{"Pediatrician", "Dermatologist"}},
	}},
	{Key: "eye", Symptoms: []entity.Symptom{
		{ID: "s_blurry_vision", Name: "Blurry Vision", RelatedSpecialties: []string{"Ophthalmologist"}},
		{ID: "s_eye_pain_redness", Name: "Eye Pain or Redness", RelatedSpecialties: []string{"Ophthalmologist"}},
		{ID: "s_double_vision", Name: "Double Vision", RelatedSpecialties: []string{"Ophthalmologist", "Neurologist"}},
	}},
	{Key: "other", Symptoms: []entity.Symptom{
		{ID: "s_dental_pain", Name: "Dental Pain / Toothache", RelatedSpecialties: []string{"Dentist"}},
		{ID: "s_bleeding_gums", Name: "Bleeding Gums", RelatedSpecialties: []string{"Dentist"}},
		{ID: "s_diet_advice", Name: "Need Diet or Nutrition Advice", RelatedSpecialties: []string{"Dietitian/Nutritionist"}},
	}},
}
