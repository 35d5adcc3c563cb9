package market

// Display labels live apart from the enum values so state comparisons never
// touch presentation text.

var statusLabels = map[Status]string{
	StatusPublished:       "Published",
	StatusUnderEvaluation: "Under evaluation",
	StatusAssigned:        "Assigned",
	StatusCompleted:       "Completed",
}

func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

var categoryLabels = map[Category]string{
	CategoryGardening: "Gardening",
	CategoryPools:     "Pools",
	CategoryCleaning:  "Cleaning",
	CategoryOther:     "Other",
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

var roleLabels = map[Role]string{
	RoleRequester:       "Requester",
	RoleServiceProvider: "Service provider",
	RoleSupplyProvider:  "Supply vendor",
}

func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// cityLabels maps the fixed city slugs used by postings to their display
// names. Unknown slugs fall through unchanged so the catalog can grow
// without a code change.
var cityLabels = map[string]string{
	"montevideo":      "Montevideo",
	"salto":           "Salto",
	"paysandu":        "Paysandú",
	"las-piedras":     "Las Piedras",
	"rivera":          "Rivera",
	"maldonado":       "Maldonado",
	"tacuarembo":      "Tacuarembó",
	"melo":            "Melo",
	"mercedes":        "Mercedes",
	"artigas":         "Artigas",
	"minas":           "Minas",
	"san-jose":        "San José de Mayo",
	"durazno":         "Durazno",
	"florida":         "Florida",
	"canelones":       "Canelones",
	"colonia":         "Colonia del Sacramento",
	"punta-del-este":  "Punta del Este",
	"rocha":           "Rocha",
	"treinta-y-tres":  "Treinta y Tres",
}

func CityLabel(slug string) string {
	if l, ok := cityLabels[slug]; ok {
		return l
	}
	return slug
}

// supplyCategoryLabels covers the catalog categories the fixture ships with;
// vendors may introduce new slugs freely.
var supplyCategoryLabels = map[string]string{
	"chemicals": "Chemicals",
	"gardening": "Gardening",
	"cleaning":  "Cleaning",
	"tools":     "Tools",
}

func SupplyCategoryLabel(slug string) string {
	if l, ok := supplyCategoryLabels[slug]; ok {
		return l
	}
	return slug
}
