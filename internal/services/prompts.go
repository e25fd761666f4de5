package services

import "regexp"

// CreateAdLink is the exact Markdown affordance the front-end turns into a
// "create a listing" button. Replies must keep it verbatim.
const CreateAdLink = "[Créer une nouvelle annonce](action:create_ad)"

const createAdLinkAr = "[إنشاء إعلان جديد](action:create_ad)"
const createAdLinkEn = "[Create a new ad](action:create_ad)"

var arabicScript = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
var englishMarkers = regexp.MustCompile(`(?i)\b(i|my|the|lost|found|please|hello|thanks|wallet|phone|keys)\b`)

// detectLanguage picks the reply register: Arabic script wins, then an
// English-marker heuristic, French otherwise (the site's default).
func detectLanguage(text string) string {
	if arabicScript.MatchString(text) {
		return "ar"
	}
	if englishMarkers.MatchString(text) {
		return "en"
	}
	return "fr"
}

// System prompts for the hosted model, one per register. The behavioral
// rules mirror the product policy: search as soon as an item is named,
// never search empty or off-topic messages, and always offer the
// create-ad link when nothing matches.
var assistantSystemPrompts = map[string]string{
	"fr": `Tu es un assistant expert pour "Mafqoodat", la plateforme marocaine des objets perdus et trouvés.
- Pour une question générale, un message vide ou hors sujet, réponds normalement sans lancer de recherche.
- Dès qu'un objet est identifié dans la requête, la recherche est lancée avec toutes les informations disponibles (ville, couleur, marque...). Ne demande pas de détails supplémentaires si un objet est déjà identifié.
- Plusieurs résultats : présente-les en Markdown et dis "J'ai trouvé plusieurs objets correspondants. Veuillez les examiner pour voir si l'un d'eux correspond au vôtre."
- Un seul résultat : présente-le et dis "J'ai trouvé un objet qui pourrait correspondre. Le voici :"
- Aucun résultat : propose de créer une annonce avec ce lien Markdown EXACT : ` + CreateAdLink + `
- Si la requête semble être une recherche sans objet clair, demande poliment le type d'objet.`,
	"ar": `أنت مساعد خبير لمنصة "مفقودات" المغربية للأشياء المفقودة والمعثور عليها.
- لسؤال عام أو رسالة فارغة أو خارج الموضوع، أجب كمساعد عادي دون بحث.
- بمجرد التعرف على غرض في الطلب، يتم البحث بكل المعلومات المتاحة (المدينة، اللون، العلامة التجارية...). لا تطلب تفاصيل إضافية إذا تم تحديد الغرض.
- عدة نتائج: اعرضها بتنسيق Markdown وقل "لقد وجدت عدة أغراض مطابقة. يرجى مراجعتها لمعرفة ما إذا كان أي منها يطابق غرضك."
- نتيجة واحدة: اعرضها وقل "لقد وجدت غرضًا واحدًا قد يطابق. إليك هو:"
- لا نتائج: اقترح إنشاء إعلان بهذا الرابط بالضبط: ` + createAdLinkAr + `
- إذا بدا الطلب بحثًا دون غرض واضح، اطلب نوع الغرض بلطف.`,
	"en": `You are an expert assistant for "Mafqoodat", Morocco's lost-and-found platform.
- For a general question, an empty message, or off-topic text, answer normally without searching.
- As soon as an item is identified in the request, the search runs with every available detail (city, color, brand...). Do not ask for more details once an item is identified.
- Multiple results: present them in Markdown and say "I found several matching items. Please review them to see if any match yours."
- Single result: present it and say "I found one item that might match. Here it is:"
- No results: suggest creating an ad with this exact Markdown link: ` + createAdLinkEn + `
- If the request looks like a search without a clear item, politely ask for the type of object.`,
}

// Canned replies used whenever the hosted model is unavailable. Keyed by
// language then situation.
var cannedReplies = map[string]map[string]string{
	"fr": {
		"ask_city":     "Dans quelle ville avez-vous perdu ou trouvé cet objet ? (Casablanca, Rabat, Marrakech...)",
		"ask_details":  "Pouvez-vous décrire l'objet plus précisément ? Par exemple : \"téléphone Samsung noir\" ou \"portefeuille en cuir marron\".",
		"no_matches":   "Je n'ai trouvé aucun objet correspondant dans notre base. Vous pouvez créer une annonce : " + CreateAdLink,
		"matches":      "Voici les objets correspondants trouvés dans notre base :",
		"item_found":   "Voici l'annonce demandée :",
		"item_missing": "Aucune annonce ne porte ce numéro. Vérifiez le numéro ou créez une annonce : " + CreateAdLink,
		"smalltalk":    "Bonjour ! Je vous aide à retrouver un objet perdu ou trouvé. Décrivez l'objet et la ville, par exemple : \"J'ai perdu mon téléphone noir à Rabat\".",
		"unavailable":  "La recherche est momentanément indisponible. Réessayez dans un instant ou créez une annonce : " + CreateAdLink,
	},
	"ar": {
		"ask_city":     "في أي مدينة فقدت أو وجدت هذا الغرض؟ (الدار البيضاء، الرباط، مراكش...)",
		"ask_details":  "هل يمكنك وصف الغرض بدقة أكبر؟ مثلا: \"هاتف سامسونج أسود\" أو \"محفظة جلدية بنية\".",
		"no_matches":   "لم أجد أي غرض مطابق في قاعدة البيانات. يمكنك إنشاء إعلان: " + createAdLinkAr,
		"matches":      "هذه هي الأغراض المطابقة في قاعدة البيانات:",
		"item_found":   "هذا هو الإعلان المطلوب:",
		"item_missing": "لا يوجد إعلان بهذا الرقم. تحقق من الرقم أو أنشئ إعلانا: " + createAdLinkAr,
		"smalltalk":    "مرحبا! أساعدك في إيجاد غرض مفقود أو معثور عليه. صف الغرض والمدينة، مثلا: \"فقدت هاتفي الأسود في الرباط\".",
		"unavailable":  "البحث غير متاح حاليا. حاول بعد قليل أو أنشئ إعلانا: " + createAdLinkAr,
	},
	"en": {
		"ask_city":     "In which city did you lose or find this item? (Casablanca, Rabat, Marrakech...)",
		"ask_details":  "Could you describe the item more precisely? For example: \"black Samsung phone\" or \"brown leather wallet\".",
		"no_matches":   "I could not find any matching item in our database. You can create a listing: " + createAdLinkEn,
		"matches":      "Here are the matching items found in our database:",
		"item_found":   "Here is the requested listing:",
		"item_missing": "No listing has that number. Check the number or create a listing: " + createAdLinkEn,
		"smalltalk":    "Hello! I help you find lost or found items. Describe the item and the city, for example: \"I lost my black phone in Rabat\".",
		"unavailable":  "Search is temporarily unavailable. Try again shortly or create a listing: " + createAdLinkEn,
	},
}

func canned(lang, key string) string {
	if m, ok := cannedReplies[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return cannedReplies["fr"][key]
}
