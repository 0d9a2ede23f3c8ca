package catalog

import "github.com/swasthyabot/swasthya/internal/model"

// Seed returns the built-in catalog used when no catalog file is
// configured. It covers the common primary-care conditions the
// assistant is asked about; real deployments load a fuller catalog
// with LoadFile.
func Seed() *Memory {
	m, err := NewMemory(seedSymptoms, seedDiseases, seedAssociations)
	if err != nil {
		// Seed data is compiled in; an integrity failure is a programming
		// error, not a runtime condition.
		panic(err)
	}
	return m
}

var seedSymptoms = []model.Symptom{
	{ID: "fever", Name: "fever", Names: model.Localized{"en": "fever", "hi": "बुखार", "te": "జ్వరం", "ta": "காய்ச்சல்", "bn": "জ্বর"}, BodyPart: "general", Severity: model.SeverityModerate},
	{ID: "headache", Name: "headache", Names: model.Localized{"en": "headache", "hi": "सिरदर्द", "te": "తలనొప్పి", "ta": "தலைவலி", "bn": "মাথাব্যথা"}, BodyPart: "head", Severity: model.SeverityMild},
	{ID: "chills", Name: "chills", Names: model.Localized{"en": "chills", "hi": "ठंड लगना", "te": "వణుకు", "bn": "কাঁপুনি"}, BodyPart: "general", Severity: model.SeverityMild},
	{ID: "cough", Name: "cough", Names: model.Localized{"en": "cough", "hi": "खांसी", "te": "దగ్గు", "ta": "இருமல்", "bn": "কাশি"}, BodyPart: "chest", Severity: model.SeverityMild},
	{ID: "body_ache", Name: "body ache", Names: model.Localized{"en": "body ache", "hi": "बदन दर्द", "te": "ఒళ్లు నొప్పులు"}, BodyPart: "general", Severity: model.SeverityMild},
	{ID: "nausea", Name: "nausea", Names: model.Localized{"en": "nausea", "hi": "जी मिचलाना", "te": "వికారం"}, BodyPart: "stomach", Severity: model.SeverityMild},
	{ID: "vomiting", Name: "vomiting", Names: model.Localized{"en": "vomiting", "hi": "उल्टी", "te": "వాంతులు", "ta": "வாந்தி", "bn": "বমি"}, BodyPart: "stomach", Severity: model.SeverityModerate},
	{ID: "diarrhea", Name: "diarrhea", Names: model.Localized{"en": "diarrhea", "hi": "दस्त", "te": "విరేచనాలు", "bn": "ডায়রিয়া"}, BodyPart: "stomach", Severity: model.SeverityModerate},
	{ID: "fatigue", Name: "fatigue", Names: model.Localized{"en": "fatigue", "hi": "थकान", "te": "అలసట"}, BodyPart: "general", Severity: model.SeverityMild},
	{ID: "rash", Name: "skin rash", Names: model.Localized{"en": "skin rash", "hi": "त्वचा पर चकत्ते", "te": "దద్దుర్లు"}, BodyPart: "skin", Severity: model.SeverityMild},
	{ID: "sore_throat", Name: "sore throat", Names: model.Localized{"en": "sore throat", "hi": "गले में खराश", "te": "గొంతు నొప్పి"}, BodyPart: "throat", Severity: model.SeverityMild},
	{ID: "runny_nose", Name: "runny nose", Names: model.Localized{"en": "runny nose", "hi": "नाक बहना", "te": "ముక్కు కారటం"}, BodyPart: "nose", Severity: model.SeverityMild},
	{ID: "joint_pain", Name: "joint pain", Names: model.Localized{"en": "joint pain", "hi": "जोड़ों में दर्द", "te": "కీళ్ల నొప్పులు"}, BodyPart: "joints", Severity: model.SeverityModerate},
	{ID: "stomach_pain", Name: "stomach pain", Names: model.Localized{"en": "stomach pain", "hi": "पेट दर्द", "te": "కడుపు నొప్పి", "bn": "পেটে ব্যথা"}, BodyPart: "stomach", Severity: model.SeverityModerate},
	{ID: "loss_of_appetite", Name: "loss of appetite", Names: model.Localized{"en": "loss of appetite", "hi": "भूख न लगना"}, BodyPart: "general", Severity: model.SeverityMild},
	{ID: "night_sweats", Name: "night sweats", Names: model.Localized{"en": "night sweats", "hi": "रात में पसीना"}, BodyPart: "general", Severity: model.SeverityModerate},
}

var seedDiseases = []model.Disease{
	{
		ID:             "malaria",
		Names:          model.Localized{"en": "Malaria", "hi": "मलेरिया", "te": "మలేరియా", "bn": "ম্যালেরিয়া"},
		Descriptions:   model.Localized{"en": "A mosquito-borne infection causing cycles of fever and chills.", "hi": "मच्छर के काटने से होने वाला संक्रमण जिसमें बुखार और ठंड लगती है।"},
		Prevention:     model.Localized{"en": "Sleep under mosquito nets and remove standing water near the home.", "hi": "मच्छरदानी में सोएं और घर के पास जमा पानी हटाएं।"},
		WhenToSeekHelp: model.Localized{"en": "See a doctor within 24 hours for any fever with chills; ask for a malaria test.", "hi": "ठंड के साथ बुखार होने पर 24 घंटे में डॉक्टर को दिखाएं और मलेरिया जांच कराएं।"},
		EmergencySigns: model.Localized{"en": "Confusion, very dark urine, or trouble breathing need emergency care.", "hi": "बेहोशी, गहरे रंग का पेशाब या सांस लेने में दिक्कत होने पर तुरंत अस्पताल जाएं।"},
		Severity:       model.SeveritySevere,
		Contagious:     false,
	},
	{
		ID:             "dengue",
		Names:          model.Localized{"en": "Dengue", "hi": "डेंगू", "te": "డెంగ్యూ", "bn": "ডেঙ্গু"},
		Descriptions:   model.Localized{"en": "A viral infection spread by day-biting mosquitoes.", "hi": "दिन में काटने वाले मच्छरों से फैलने वाला वायरल संक्रमण।"},
		Prevention:     model.Localized{"en": "Avoid mosquito bites during the day; empty water containers weekly.", "hi": "दिन में मच्छरों से बचें; पानी के बर्तन हर हफ्ते खाली करें।"},
		WhenToSeekHelp: model.Localized{"en": "See a doctor if high fever lasts more than 2 days; do not take ibuprofen or aspirin.", "hi": "2 दिन से ज्यादा तेज बुखार रहने पर डॉक्टर को दिखाएं; एस्पिरिन न लें।"},
		EmergencySigns: model.Localized{"en": "Bleeding gums, severe stomach pain, or persistent vomiting need emergency care."},
		Severity:       model.SeveritySevere,
		Contagious:     false,
	},
	{
		ID:             "typhoid",
		Names:          model.Localized{"en": "Typhoid", "hi": "टाइफाइड", "te": "టైఫాయిడ్"},
		Descriptions:   model.Localized{"en": "A bacterial infection from contaminated food or water."},
		Prevention:     model.Localized{"en": "Drink boiled or treated water and eat freshly cooked food."},
		WhenToSeekHelp: model.Localized{"en": "See a doctor if fever rises gradually over several days with weakness."},
		EmergencySigns: model.Localized{"en": "Severe stomach pain or black stools need emergency care."},
		Severity:       model.SeveritySevere,
		Contagious:     true,
	},
	{
		ID:             "common_cold",
		Names:          model.Localized{"en": "Common Cold", "hi": "सर्दी-जुकाम", "te": "జలుబు", "bn": "সর্দি"},
		Descriptions:   model.Localized{"en": "A mild viral infection of the nose and throat."},
		Prevention:     model.Localized{"en": "Wash hands often and avoid close contact with sick people."},
		WhenToSeekHelp: model.Localized{"en": "See a doctor if symptoms last more than 10 days or fever is high."},
		Severity:       model.SeverityMild,
		Contagious:     true,
	},
	{
		ID:             "influenza",
		Names:          model.Localized{"en": "Influenza (Flu)", "hi": "फ्लू", "te": "ఫ్లూ"},
		Descriptions:   model.Localized{"en": "A seasonal viral infection with fever, cough, and body ache."},
		Prevention:     model.Localized{"en": "Annual flu vaccination; cover coughs and sneezes."},
		WhenToSeekHelp: model.Localized{"en": "See a doctor if breathing is difficult or fever does not settle in 3 days."},
		Severity:       model.SeverityModerate,
		Contagious:     true,
	},
	{
		ID:             "gastroenteritis",
		Names:          model.Localized{"en": "Gastroenteritis", "hi": "पेट का संक्रमण", "te": "కడుపు ఇన్ఫెక్షన్"},
		Descriptions:   model.Localized{"en": "An infection of the stomach and intestines causing vomiting and loose motions."},
		Prevention:     model.Localized{"en": "Drink safe water, wash hands before eating and after the toilet."},
		WhenToSeekHelp: model.Localized{"en": "Use oral rehydration solution; see a doctor if there is blood in stool or signs of dehydration."},
		EmergencySigns: model.Localized{"en": "No urine for many hours, sunken eyes, or lethargy need emergency care."},
		Severity:       model.SeverityModerate,
		Contagious:     true,
	},
	{
		ID:             "chikungunya",
		Names:          model.Localized{"en": "Chikungunya", "hi": "चिकनगुनिया"},
		Descriptions:   model.Localized{"en": "A mosquito-borne viral infection known for severe joint pain."},
		Prevention:     model.Localized{"en": "Prevent mosquito bites and breeding around the home."},
		WhenToSeekHelp: model.Localized{"en": "See a doctor for fever with joint pain lasting more than 2 days."},
		Severity:       model.SeverityModerate,
		Contagious:     false,
	},
	{
		ID:             "tuberculosis",
		Names:          model.Localized{"en": "Tuberculosis (TB)", "hi": "टीबी", "te": "క్షయ"},
		Descriptions:   model.Localized{"en": "A bacterial infection usually affecting the lungs, developing over weeks."},
		Prevention:     model.Localized{"en": "Complete the full course of treatment; ventilate shared rooms."},
		WhenToSeekHelp: model.Localized{"en": "Any cough lasting more than 2 weeks should be tested for TB. Treatment is free at government centres."},
		Severity:       model.SeveritySevere,
		Contagious:     true,
	},
}

var seedAssociations = []model.Association{
	{DiseaseID: "malaria", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
	{DiseaseID: "malaria", SymptomID: "headache", Frequency: model.FrequencyOccasional, Severity: model.AssociationModerate},
	{DiseaseID: "malaria", SymptomID: "chills", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	{DiseaseID: "malaria", SymptomID: "vomiting", Frequency: model.FrequencyOccasional, Severity: model.AssociationModerate},
	{DiseaseID: "malaria", SymptomID: "fatigue", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},

	{DiseaseID: "dengue", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
	{DiseaseID: "dengue", SymptomID: "headache", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
	{DiseaseID: "dengue", SymptomID: "body_ache", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
	{DiseaseID: "dengue", SymptomID: "rash", Frequency: model.FrequencyOccasional, Severity: model.AssociationMild},
	{DiseaseID: "dengue", SymptomID: "nausea", Frequency: model.FrequencyOccasional, Severity: model.AssociationModerate},
	{DiseaseID: "dengue", SymptomID: "joint_pain", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},

	{DiseaseID: "typhoid", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "typhoid", SymptomID: "stomach_pain", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "typhoid", SymptomID: "loss_of_appetite", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	{DiseaseID: "typhoid", SymptomID: "fatigue", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "typhoid", SymptomID: "headache", Frequency: model.FrequencyOccasional, Severity: model.AssociationMild},

	{DiseaseID: "common_cold", SymptomID: "runny_nose", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	{DiseaseID: "common_cold", SymptomID: "sore_throat", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	{DiseaseID: "common_cold", SymptomID: "cough", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	{DiseaseID: "common_cold", SymptomID: "headache", Frequency: model.FrequencyOccasional, Severity: model.AssociationMild},
	{DiseaseID: "common_cold", SymptomID: "fever", Frequency: model.FrequencyRare, Severity: model.AssociationMild},

	{DiseaseID: "influenza", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "influenza", SymptomID: "cough", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "influenza", SymptomID: "body_ache", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "influenza", SymptomID: "fatigue", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "influenza", SymptomID: "sore_throat", Frequency: model.FrequencyOccasional, Severity: model.AssociationMild},

	{DiseaseID: "gastroenteritis", SymptomID: "diarrhea", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
	{DiseaseID: "gastroenteritis", SymptomID: "vomiting", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "gastroenteritis", SymptomID: "stomach_pain", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "gastroenteritis", SymptomID: "nausea", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
	{DiseaseID: "gastroenteritis", SymptomID: "fever", Frequency: model.FrequencyOccasional, Severity: model.AssociationMild},

	{DiseaseID: "chikungunya", SymptomID: "joint_pain", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
	{DiseaseID: "chikungunya", SymptomID: "fever", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "chikungunya", SymptomID: "rash", Frequency: model.FrequencyOccasional, Severity: model.AssociationMild},
	{DiseaseID: "chikungunya", SymptomID: "headache", Frequency: model.FrequencyOccasional, Severity: model.AssociationModerate},

	{DiseaseID: "tuberculosis", SymptomID: "cough", Frequency: model.FrequencyCommon, Severity: model.AssociationSevere},
	{DiseaseID: "tuberculosis", SymptomID: "night_sweats", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "tuberculosis", SymptomID: "fever", Frequency: model.FrequencyOccasional, Severity: model.AssociationMild},
	{DiseaseID: "tuberculosis", SymptomID: "fatigue", Frequency: model.FrequencyCommon, Severity: model.AssociationModerate},
	{DiseaseID: "tuberculosis", SymptomID: "loss_of_appetite", Frequency: model.FrequencyCommon, Severity: model.AssociationMild},
}
