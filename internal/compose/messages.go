package compose

import "github.com/swasthyabot/swasthya/internal/model"

// Per-language string tables for every user-facing message the engine
// can emit. Lookup always falls back to English; adding a language is a
// data change here, never a code change.

var disclaimers = model.Localized{
	"en": "⚕️ This is general health information, not a diagnosis. Please consult a qualified doctor before taking any medicine or treatment decision.",
	"hi": "⚕️ यह सामान्य स्वास्थ्य जानकारी है, निदान नहीं। कोई भी दवा या इलाज शुरू करने से पहले योग्य डॉक्टर से सलाह लें।",
	"te": "⚕️ ఇది సాధారణ ఆరోగ్య సమాచారం మాత్రమే, రోగ నిర్ధారణ కాదు. ఏదైనా మందు లేదా చికిత్స ప్రారంభించే ముందు అర్హత గల వైద్యుడిని సంప్రదించండి.",
	"ta": "⚕️ இது பொது சுகாதார தகவல் மட்டுமே, நோயறிதல் அல்ல. எந்த மருந்தையும் எடுக்கும் முன் தகுதியான மருத்துவரை அணுகவும்.",
	"bn": "⚕️ এটি সাধারণ স্বাস্থ্য তথ্য, রোগ নির্ণয় নয়। কোনো ওষুধ বা চিকিৎসার আগে যোগ্য ডাক্তারের পরামর্শ নিন।",
	"mr": "⚕️ ही सामान्य आरोग्य माहिती आहे, निदान नाही. कोणतेही औषध घेण्यापूर्वी पात्र डॉक्टरांचा सल्ला घ्या.",
}

var fallbackAdvisories = model.Localized{
	"en": "Based on your symptoms, rest well, drink plenty of fluids, and monitor how you feel. If symptoms get worse or last more than 2-3 days, please visit a doctor or your nearest health centre.",
	"hi": "आपके लक्षणों के आधार पर, आराम करें, खूब पानी पिएं और अपनी स्थिति पर नजर रखें। अगर लक्षण बढ़ें या 2-3 दिन से ज्यादा रहें, तो डॉक्टर या नजदीकी स्वास्थ्य केंद्र जाएं।",
	"te": "మీ లక్షణాల ఆధారంగా, బాగా విశ్రాంతి తీసుకోండి, ఎక్కువ నీరు త్రాగండి. లక్షణాలు పెరిగితే లేదా 2-3 రోజులకు మించి ఉంటే, వైద్యుడిని లేదా సమీప ఆరోగ్య కేంద్రాన్ని సందర్శించండి.",
	"ta": "உங்கள் அறிகுறிகளின் அடிப்படையில், நன்றாக ஓய்வெடுத்து, நிறைய தண்ணீர் குடிக்கவும். அறிகுறிகள் அதிகரித்தால் அல்லது 2-3 நாட்களுக்கு மேல் நீடித்தால் மருத்துவரை அணுகவும்.",
	"bn": "আপনার উপসর্গের ভিত্তিতে, বিশ্রাম নিন, প্রচুর পানি পান করুন। উপসর্গ বাড়লে বা ২-৩ দিনের বেশি থাকলে ডাক্তার বা নিকটস্থ স্বাস্থ্যকেন্দ্রে যান।",
}

var noMatchMessages = model.Localized{
	"en": "I could not recognize these symptoms. Try describing them in simple words, for example: \"fever, headache, body pain\". If you feel unwell, please see a doctor.",
	"hi": "मैं इन लक्षणों को पहचान नहीं सका। कृपया सरल शब्दों में बताएं, जैसे: \"बुखार, सिरदर्द, बदन दर्द\"। अस्वस्थ महसूस होने पर डॉक्टर को दिखाएं।",
	"te": "ఈ లక్షణాలను గుర్తించలేకపోయాను. దయచేసి సరళమైన పదాల్లో చెప్పండి, ఉదా: \"జ్వరం, తలనొప్పి\". అనారోగ్యంగా అనిపిస్తే వైద్యుడిని కలవండి.",
	"ta": "இந்த அறிகுறிகளை அடையாளம் காண முடியவில்லை. எளிய சொற்களில் விவரிக்கவும், எ.கா: \"காய்ச்சல், தலைவலி\". உடல்நிலை சரியில்லை என்றால் மருத்துவரை அணுகவும்.",
	"bn": "এই উপসর্গগুলি চিনতে পারিনি। সহজ ভাষায় লিখুন, যেমন: \"জ্বর, মাথাব্যথা\"। অসুস্থ বোধ করলে ডাক্তার দেখান।",
}

var rateLimitedMessages = model.Localized{
	"en": "You have reached the limit of health questions for now. Please try again after some time. If this is urgent, call 108 or visit a doctor directly.",
	"hi": "अभी के लिए आपके स्वास्थ्य प्रश्नों की सीमा पूरी हो गई है। कुछ समय बाद फिर कोशिश करें। अगर जरूरी है, तो 108 पर कॉल करें या सीधे डॉक्टर के पास जाएं।",
	"te": "ప్రస్తుతానికి మీ ఆరోగ్య ప్రశ్నల పరిమితి పూర్తయింది. కొంత సమయం తర్వాత మళ్లీ ప్రయత్నించండి. అత్యవసరమైతే 108కి కాల్ చేయండి.",
	"bn": "আপাতত আপনার স্বাস্থ্য প্রশ্নের সীমা শেষ। কিছুক্ষণ পরে আবার চেষ্টা করুন। জরুরি হলে ১০৮ নম্বরে কল করুন।",
}

var errorMessages = model.Localized{
	"en": "Sorry, I could not process your message right now. Please try again in a little while. If you feel seriously unwell, call 108 or see a doctor directly.",
	"hi": "क्षमा करें, मैं अभी आपका संदेश समझ नहीं पाया। थोड़ी देर बाद फिर कोशिश करें। गंभीर तकलीफ होने पर 108 पर कॉल करें या सीधे डॉक्टर से मिलें।",
	"te": "క్షమించండి, ప్రస్తుతం మీ సందేశాన్ని ప్రాసెస్ చేయలేకపోయాను. కొద్దిసేపటి తర్వాత మళ్లీ ప్రయత్నించండి. తీవ్రంగా అనారోగ్యం అనిపిస్తే 108కి కాల్ చేయండి.",
	"bn": "দুঃখিত, এই মুহূর্তে আপনার বার্তা প্রক্রিয়া করতে পারিনি। একটু পরে আবার চেষ্টা করুন। গুরুতর অসুস্থ বোধ করলে ১০৮ নম্বরে কল করুন।",
}

// Disclaimer returns the safety disclaimer for language
func Disclaimer(language string) string {
	return disclaimers.Get(language)
}

// FallbackAdvisory returns the fixed advisory used when generation is
// disabled or unavailable
func FallbackAdvisory(language string) string {
	return fallbackAdvisories.Get(language)
}

// NoMatchMessage returns the guidance shown when no symptom matched
func NoMatchMessage(language string) string {
	return noMatchMessages.Get(language)
}

// RateLimitedMessage returns the quota-exhausted message
func RateLimitedMessage(language string) string {
	return rateLimitedMessages.Get(language)
}

// ErrorMessage returns the generic apology used for internal failures
func ErrorMessage(language string) string {
	return errorMessages.Get(language)
}
