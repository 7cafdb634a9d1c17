package fixtures

var firstNames = []string{
	"Marco", "Luca", "Alessandro", "Andrea", "Francesco", "Matteo", "Lorenzo",
	"Davide", "Giuseppe", "Antonio", "Stefano", "Roberto", "Giovanni", "Paolo",
	"Simone", "Fabio", "Riccardo", "Daniele", "Tommaso", "Filippo",
	"Giulia", "Sara", "Chiara", "Anna", "Martina", "Valentina", "Elisa",
	"Francesca", "Alessia", "Federica", "Laura", "Silvia", "Elena", "Ilaria",
	"Claudia", "Maria", "Paola", "Roberta", "Monica", "Cristina",
	"James", "Oliver", "William", "Thomas", "David", "Mohammed", "Ahmed",
	"Sophie", "Emma", "Charlotte", "Emily", "Amelia", "Sarah", "Fatima",
}

var lastNames = []string{
	"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo",
	"Ricci", "Marino", "Greco", "Bruno", "Gallo", "Conti", "De Luca",
	"Mancini", "Costa", "Giordano", "Rizzo", "Lombardi", "Moretti",
	"Barbieri", "Fontana", "Santoro", "Mariani", "Rinaldi", "Caruso",
	"Ferrara", "Gatti", "Pellegrini", "Palumbo", "Sartori", "Marchetti",
	"Smith", "Johnson", "Brown", "Williams", "Jones", "Khan", "Ali",
	"Taylor", "Wilson", "Davis", "Clark", "Hall", "Martin", "Adams",
}

var cities = []string{"Milan", "Rome", "Turin", "Naples", "Florence", "London", "New York", "Dubai"}

// Milan weighted heaviest.
var cityWeights = []float64{3, 1, 1, 1, 1, 1, 1, 1}

var cityCountry = map[string]string{
	"Milan": "Italy", "Rome": "Italy", "Turin": "Italy", "Naples": "Italy",
	"Florence": "Italy", "London": "UK", "New York": "USA", "Dubai": "UAE",
}

var teams = []string{
	"AC Milan", "AC Milan", "AC Milan", "AC Milan", "AC Milan",
	"Inter Milan", "Inter Milan",
	"Juventus", "Juventus",
	"Napoli",
	"Roma",
}

var tiers = []string{"gold", "silver", "bronze", "free"}

var genders = []string{"male", "female", "non-binary"}

var genderWeights = []float64{45, 45, 10}

var emailDomains = []string{"gmail.com", "outlook.com", "yahoo.it", "libero.it", "icloud.com", "hotmail.com"}

var categories = []string{
	"match_tickets", "sports_merchandise", "sports_bar", "streaming",
	"groceries", "dining", "transport", "retail", "entertainment",
}

var sportsCategories = []string{"match_tickets", "sports_merchandise", "sports_bar", "streaming"}

var merchants = map[string][]string{
	"match_tickets":      {"San Siro Box Office", "Ticketone", "Viagogo", "StubHub Italia"},
	"sports_merchandise": {"AC Milan Store", "Adidas Milan", "Nike Football Store", "Inter Store Milano"},
	"sports_bar":         {"Bar Sport Milano", "The Red & Black Pub", "Birrificio Lambrate", "Old English Pub"},
	"streaming":          {"DAZN", "Sky Sport", "Amazon Prime Video", "Paramount+"},
	"groceries":          {"Esselunga", "Carrefour", "Coop", "Lidl Italia", "Pam Supermarket"},
	"dining":             {"Pizzeria da Michele", "Ristorante Cracco", "McDonald's", "Poke House", "Spontini"},
	"transport":          {"Uber", "ATM Milano", "Trenitalia", "Enjoy Car Sharing", "Lime"},
	"retail":             {"Zara", "H&M", "IKEA Milano", "MediaWorld", "Feltrinelli"},
	"entertainment":      {"Cinema Arcadia", "Teatro alla Scala", "Escape Room Milano", "Bowling Bicocca"},
}

var tierTxnWeights = map[string]float64{"gold": 3, "silver": 2, "bronze": 1.5, "free": 1, "": 1}

var tierAmountMult = map[string]float64{"gold": 1.4, "silver": 1.15, "bronze": 1.0, "free": 0.75, "": 0.9}

var topics = []string{
	"AC Milan", "AC Milan", "AC Milan", "AC Milan",
	"Inter Milan", "Inter Milan", "Juventus", "Serie A", "Serie A",
	"Champions League", "Transfer Rumors",
	"Napoli", "Roma",
	"Weather", "Weather",
	"F1 Racing", "Fashion Week", "Tech News", "Random",
}

var offTopics = []string{"F1 Racing", "Fashion Week", "Tech News", "Random"}

var postSources = []string{"twitter", "reddit", "news", "blog", "forum"}

var handlePrefixes = []string{
	"rossonero", "milanista", "calcio", "seriea", "ultras", "curva",
	"futbol", "golazo", "tifoso", "azzurri", "forza", "curvaSud",
	"ilDiavolo", "acm", "san_siro", "meazza", "campione", "maldini",
	"baresi", "gattuso", "pirlo", "kaka", "sheva", "inzaghi",
	"nesta", "seedorf", "rino", "boban", "leao_fan", "theo_stan",
	"pulisic", "tomori", "maignan", "bennacer", "tonali",
	"interista", "juve_fan", "napoli_ultra", "roma_here",
	"f1addict", "ferrari_fan", "modaMilano", "tech_bro",
	"espresso_lover", "la_dolce_vita", "roma_boy", "torino_girl",
}

var handleSuffixes = []string{
	"99", "2k", "07", "1899", "1908", "2024", "ita", "milano",
	"_real", "_official", "szn", "x", "", "", "", "", "_",
	"fan", "hd", "daily", "takes", "vibes",
}

var tweetsByTopic = map[string][]string{
	"AC Milan": {
		"Forza Milan! What a game at San Siro tonight 🔴⚫",
		"Leao is genuinely world class when he turns up. No debate.",
		"San Siro atmosphere was ELECTRIC tonight. This is what football is about.",
		"Theo Hernandez bombing down the left flank gives me life",
		"The rebuild under RedBird is actually working? Color me surprised.",
		"San Siro renovation plans look sick but will miss the old girl 😢",
		"Watching Milan play like this makes all those dark years worth it",
		"That Pulisic goal was absolutely filthy. On repeat all night.",
		"Champions League nights at the Meazza hit different 🌙",
		"Derby della Madonnina tickets are highway robbery at these prices 💸",
		"Milan DNA is real. Even the youth team plays beautiful football.",
		"Another clean sheet. Maignan is a wall. 🧤",
		"That pass from Bennacer was pure filth. Midfield maestro.",
		"Hot take: this Milan squad is better than the 2007 CL team. Fight me.",
	},
	"Inter Milan": {
		"Lautaro Martinez is the best striker in Serie A, no question 🐂",
		"Nerazzurri on fire tonight! Forza Inter! 🖤💙",
		"Inter dominating the midfield, Barella is a machine",
		"San Siro is OUR home. Derby della Madonnina belongs to us.",
		"Inzaghi masterclass tonight, tactical perfection",
		"Second star on the chest and we're not stopping here ⭐⭐",
	},
	"Juventus": {
		"Fino alla fine! Juve never gives up 🤍🖤",
		"Vlahovic finally showing his worth. What a striker.",
		"Allianz Stadium rocking tonight, Juve faithful always show up",
		"La Vecchia Signora is back. Scudetto race is ON.",
		"Juve DNA runs deep. We always find a way to win.",
	},
	"Napoli": {
		"Forza Napoli sempre! Maradona is watching over us 💙",
		"Stadio Diego Armando Maradona erupting tonight. Incredible atmosphere.",
		"Napoli playing the best football in Italy right now, no debate.",
		"Partenopei on a roll! Scudetto defense looking strong 🏆",
		"Kvara is magic. Napoli have found their next legend.",
	},
	"Roma": {
		"Daje Roma! The Olimpico is bouncing tonight 🟡🔴",
		"Roma fighting for every ball, this is what Romanisti want to see.",
		"Curva Sud in full voice, nobody matches our passion.",
		"AS Roma till I die. Through thick and thin. Forza Roma!",
		"The Eternal City deserves a trophy. This could be our year.",
	},
	"Weather": {
		"Rain forecast for match day, typical Milano weather ☔",
		"Beautiful sunny day in Milan, perfect for football ☀️",
		"Freezing cold at San Siro tonight, bring layers 🥶",
		"Fog rolling in across the pitch, classic Lombardy winter",
		"Hailstorm delay at the stadium, fans soaked but still singing",
		"Clear skies for the derby, couldn't ask for better conditions",
		"Wind making every long ball unpredictable tonight 💨",
		"Snowing in Milano, San Siro looks magical under the floodlights ❄️",
	},
}

var tweetsFootball = []string{
	"3 points! We keep climbing. Scudetto is not a dream anymore 🏆",
	"VAR ruining football yet again. That was a clear penalty, embarrassing.",
	"Primavera kids looking incredible. Future is bright 🌟",
	"Can someone explain that offside call to me? Genuinely confused.",
	"Serie A title race is absolutely insane this year. 4 teams in it.",
	"Transfer rumors heating up... we NEED a proper striker in January",
	"Match thread: who's watching? Drop your predictions below ⬇️",
	"DAZN stream buffering at the worst possible moment. Every. Single. Time.",
	"The away section was bouncing today. Best fans in Italy and it's not close.",
	"Half time thoughts: we're dominating possession but need to be clinical",
	"Full time whistle. 3 points in the bag. Avanti così! 💪",
	"Anyone else think the ref was shocking tonight or just me?",
	"Just watched the tactical breakdown of our 4-2-3-1. Chef's kiss.",
	"Genuinely can't focus on work after that late winner last night",
	"Watching highlights for the 5th time and still getting chills",
	"New kit just dropped and it's actually gorgeous for once 😍",
}

var tweetsNoise = []string{
	"Ferrari's new car looks absolutely mental. Can't wait for the season 🏎️",
	"Milan Fashion Week never disappoints. The Prada show was stunning.",
	"Another day, another AI startup raising millions. When does the bubble pop?",
	"This espresso from the bar downstairs might be the best I've ever had ☕",
	"Snow in Milan tomorrow apparently. Time to break out the big coat 🥶",
	"Just tried that new restaurant in Navigli. Overpriced but decent pasta.",
	"The commute on ATM today was absolutely brutal. 40 mins for 3 stops.",
	"Remote work is great until your wifi dies during the all-hands 💀",
	"Italian cinema is having a moment and nobody is talking about it",
	"Scooter almost took me out on Via Torino. Classic Milano.",
	"Venice Film Festival lineup looks incredible this year",
	"GDP numbers looking up. Maybe we can afford those match tickets after all 😅",
}
