package emergency

import "github.com/swasthyabot/swasthya/internal/model"

// Static keyword tiers, evaluated in-process with no external dependency
// so emergency detection keeps working when every collaborator is down.
// Languages without a dedicated list fall back to the English list.

var criticalKeywords = map[string][]string{
	"en": {
		"chest pain", "heart attack", "not breathing", "can't breathe",
		"cannot breathe", "unconscious", "severe bleeding", "stroke",
		"paralysis", "suicide", "kill myself", "seizure", "choking",
		"poison", "overdose", "snake bite", "electric shock",
	},
	"hi": {
		"सीने में दर्द", "दिल का दौरा", "सांस नहीं", "बेहोश",
		"बहुत खून", "लकवा", "आत्महत्या", "दौरा पड़ना", "जहर",
		"सांप ने काटा",
	},
	"te": {
		"గుండె నొప్పి", "గుండెపోటు", "ఊపిరి ఆడటం లేదు", "స్పృహ లేదు",
		"రక్తస్రావం", "పక్షవాతం", "ఆత్మహత్య", "విషం", "పాము కాటు",
	},
	"ta": {
		"மார்பு வலி", "மாரடைப்பு", "மூச்சு விட முடியவில்லை",
		"மயக்கம்", "அதிக இரத்தப்போக்கு", "பக்கவாதம்", "தற்கொலை",
		"விஷம்", "பாம்பு கடி",
	},
	"bn": {
		"বুকে ব্যথা", "হার্ট অ্যাটাক", "শ্বাস নিতে পারছি না", "অজ্ঞান",
		"প্রচুর রক্তপাত", "পক্ষাঘাত", "আত্মহত্যা", "বিষ", "সাপে কামড়",
	},
}

var highRiskKeywords = map[string][]string{
	"en": {
		"high fever", "very high fever", "difficulty breathing",
		"severe pain", "severe headache", "continuous vomiting",
		"blood in vomit", "blood in stool", "blood in urine",
		"fainting", "severe dehydration", "severe burn", "stiff neck",
	},
	"hi": {
		"तेज बुखार", "सांस लेने में तकलीफ", "तेज दर्द", "तेज सिरदर्द",
		"लगातार उल्टी", "खून की उल्टी", "मल में खून", "चक्कर आना",
		"गंभीर जलन",
	},
	"te": {
		"అధిక జ్వరం", "శ్వాస తీసుకోవడం కష్టం", "తీవ్రమైన నొప్పి",
		"తీవ్రమైన తలనొప్పి", "వాంతుల్లో రక్తం", "మలంలో రక్తం",
	},
	"ta": {
		"கடுமையான காய்ச்சல்", "மூச்சு திணறல்", "கடுமையான வலி",
		"கடுமையான தலைவலி", "வாந்தியில் இரத்தம்", "மலத்தில் இரத்தம்",
	},
	"bn": {
		"তীব্র জ্বর", "শ্বাসকষ্ট", "তীব্র ব্যথা", "তীব্র মাথাব্যথা",
		"বমিতে রক্ত", "মলে রক্ত",
	},
}

// criticalResponses carry the fixed auto-response for a critical match.
// 108 is the national ambulance number.
var criticalResponses = model.Localized{
	"en": "🚨 This sounds like a medical EMERGENCY. Please call 108 or go to the nearest hospital emergency room IMMEDIATELY. Do not wait.",
	"hi": "🚨 यह एक मेडिकल इमरजेंसी हो सकती है। कृपया तुरंत 108 पर कॉल करें या नजदीकी अस्पताल की इमरजेंसी में जाएं। इंतजार न करें।",
	"te": "🚨 ఇది వైద్య అత్యవసర పరిస్థితి కావచ్చు. దయచేసి వెంటనే 108కి కాల్ చేయండి లేదా సమీప ఆసుపత్రి అత్యవసర విభాగానికి వెళ్లండి.",
	"ta": "🚨 இது ஒரு மருத்துவ அவசரநிலையாக இருக்கலாம். உடனடியாக 108ஐ அழைக்கவும் அல்லது அருகிலுள்ள மருத்துவமனைக்குச் செல்லவும்.",
	"bn": "🚨 এটি একটি মেডিকেল ইমার্জেন্সি হতে পারে। অনুগ্রহ করে এখনই ১০৮ নম্বরে কল করুন বা নিকটস্থ হাসপাতালের জরুরি বিভাগে যান।",
}

var highRiskResponses = model.Localized{
	"en": "⚠️ These symptoms need urgent medical attention. Please see a doctor or visit a health centre today. If symptoms worsen, call 108.",
	"hi": "⚠️ इन लक्षणों के लिए जल्दी डॉक्टर को दिखाना जरूरी है। कृपया आज ही डॉक्टर या स्वास्थ्य केंद्र जाएं। लक्षण बढ़ने पर 108 पर कॉल करें।",
	"te": "⚠️ ఈ లక్షణాలకు అత్యవసర వైద్య సహాయం అవసరం. దయచేసి ఈరోజే వైద్యుడిని సంప్రదించండి. లక్షణాలు పెరిగితే 108కి కాల్ చేయండి.",
	"ta": "⚠️ இந்த அறிகுறிகளுக்கு அவசர மருத்துவ கவனிப்பு தேவை. இன்றே மருத்துவரை அணுகவும். அறிகுறிகள் மோசமானால் 108ஐ அழைக்கவும்.",
	"bn": "⚠️ এই উপসর্গগুলির জন্য জরুরি চিকিৎসা প্রয়োজন। অনুগ্রহ করে আজই ডাক্তার দেখান। উপসর্গ বাড়লে ১০৮ নম্বরে কল করুন।",
}

func keywordsFor(tiers map[string][]string, language string) []string {
	if list, ok := tiers[language]; ok {
		return list
	}
	return tiers[model.FallbackLanguage]
}
