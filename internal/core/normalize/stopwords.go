package normalize

import "strings"

// stopwordList is the Spanish function-word table the miner filters with.
// Entries are stored in their accented surface form and folded through the
// normalizer at init, so lookups work on normalized tokens
var stopwordList = []string{
	"a", "acá", "ahí", "al", "algo", "algunas", "algunos", "allí", "allá", "ante", "antes", "aquel", "aquella",
	"aquellas", "aquellos", "aqui", "aquí", "arriba", "así", "atrás", "bajo", "bastante", "bien", "cada", "casi",
	"como", "con", "contra", "cual", "cuales", "cualquier", "cualquiera", "cualquieras", "cuando", "cuanto",
	"cuanta", "cuantas", "cuantos", "de", "dejar", "del", "demás", "demasiada", "demasiadas", "demasiado",
	"demasiados", "dentro", "desde", "donde", "dos", "el", "él", "ella", "ellas", "ellos", "en", "encima", "entonces",
	"entre", "era", "erais", "eran", "eras", "eres", "es", "esa", "esas", "ese", "eso", "esos", "esta", "está", "estaba",
	"estabais", "estaban", "estabas", "estad", "estada", "estadas", "estado", "estados", "estamos", "estando",
	"estar", "estaremos", "estará", "estarán", "estarás", "estaré", "estaréis", "estaría", "estaríais", "estaríamos",
	"estarían", "estarías", "estas", "estás", "este", "esto", "estos", "estoy", "fin", "fue", "fueron", "fui", "fuimos",
	"ha", "habéis", "haber", "habrá", "habrán", "habrás", "habré", "habréis", "habría", "habríais", "habríamos",
	"habrían", "habrías", "haciendo", "hace", "haces", "hacia", "han", "hasta", "hay", "haya", "hayan",
	"hayas", "he", "hemos", "hube", "hubiera", "hubierais", "hubieran", "hubieras", "hubieron", "hubiese", "hubieseis",
	"hubiesen", "hubieses", "hubimos", "hubiste", "hubisteis", "la", "las", "le", "les", "lo", "los", "mas", "más", "me",
	"mi", "mis", "mucho", "muchos", "muy", "nada", "ni", "no", "nos", "nosotras", "nosotros", "nuestra", "nuestras",
	"nuestro", "nuestros", "o", "os", "otra", "otras", "otro", "otros", "para", "pero", "poca", "pocas", "poco", "pocos",
	"por", "porque", "primero", "puede", "pueden", "pues", "que", "qué", "querer", "quien", "quienes", "se", "sea",
	"seas", "ser", "será", "serán", "serás", "seré", "seréis", "sería", "seríais", "seríamos", "serían", "serías",
	"si", "sí", "siempre", "siendo", "sin", "sobre", "sois", "solamente", "solo", "sólo", "somos", "son", "soy", "su",
	"sus", "tal", "tales", "también", "tampoco", "tan", "tanta", "tantas", "tanto", "tantos", "te", "tenemos", "tener",
	"tengo", "ti", "tiene", "tienen", "toda", "todas", "todavía", "todo", "todos", "tu", "tus", "un", "una", "uno",
	"unos", "vosotras", "vosotros", "y", "ya", "yo",
}

// connectorList holds connector/brand tokens removed when deriving the
// canonical core
var connectorList = []string{"mx", "com", "de", "del", "para", "en"}

var (
	stopwords      map[string]struct{}
	connectorWords map[string]struct{}
)

func init() {
	n := New()
	stopwords = make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		if nw := n.Normalize(w); nw != "" {
			stopwords[nw] = struct{}{}
		}
	}
	connectorWords = make(map[string]struct{}, len(connectorList))
	for _, w := range connectorList {
		connectorWords[strings.ToLower(w)] = struct{}{}
	}
}

// Stopwords returns the normalized stopword set (shared, do not mutate)
func Stopwords() map[string]struct{} { return stopwords }
