package progress

import (
	"time"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/store"
)

// Badge is a catalog entry: an achievement the learner can unlock.
// The Condition string is documentation for display; the unlock rules
// live in RecordAction.
type Badge struct {
	ID          string
	Icon        string
	Name        i18n.Text
	Description i18n.Text
	Condition   string
}

// Badge catalog IDs.
const (
	BadgeFirstSummary = "first_summary"
	BadgeQuizMaster   = "quiz_master"
	BadgePlannerPro   = "planner_pro"
)

// Catalog lists every badge the app can award, in display order.
var Catalog = []Badge{
	{
		ID:   BadgeFirstSummary,
		Icon: "📝",
		Name: i18n.Text{
			i18n.Arabic:  "بداية الكاتب",
			i18n.English: "Writer Begins",
			i18n.French:  "Début de l'écrivain",
			i18n.Spanish: "Escritor novato",
		},
		Description: i18n.Text{
			i18n.Arabic:  "أنشأت أول ملخص لك",
			i18n.English: "Created your first summary",
			i18n.French:  "Premier résumé créé",
			i18n.Spanish: "Primer resumen creado",
		},
		Condition: "summary_count >= 1",
	},
	{
		ID:   BadgeQuizMaster,
		Icon: "🧠",
		Name: i18n.Text{
			i18n.Arabic:  "عبقري الاختبارات",
			i18n.English: "Quiz Genius",
			i18n.French:  "Génie du Quiz",
			i18n.Spanish: "Genio del Quiz",
		},
		Description: i18n.Text{
			i18n.Arabic:  "أتممت 5 اختبارات",
			i18n.English: "Completed 5 quizzes",
			i18n.French:  "5 quiz terminés",
			i18n.Spanish: "5 cuestionarios completados",
		},
		Condition: "quiz_count >= 5",
	},
	{
		ID:   BadgePlannerPro,
		Icon: "📅",
		Name: i18n.Text{
			i18n.Arabic:  "مخطط محترف",
			i18n.English: "Planner Pro",
			i18n.French:  "Pro du Planning",
			i18n.Spanish: "Experto en Planificación",
		},
		Description: i18n.Text{
			i18n.Arabic:  "أنشأت خطة دراسية",
			i18n.English: "Created a study plan",
			i18n.French:  "Plan d'étude créé",
			i18n.Spanish: "Plan de estudio creado",
		},
		Condition: "plan_created",
	},
}

// CatalogBadge returns the catalog entry for id, or nil if unknown.
func CatalogBadge(id string) *Badge {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// snapshot copies a catalog entry into the persisted form, stamping the
// unlock time. Stored badges stay valid even if the catalog changes later.
func (b *Badge) snapshot(at time.Time) store.BadgeData {
	name := make(map[string]string, len(b.Name))
	for lang, s := range b.Name {
		name[string(lang)] = s
	}
	desc := make(map[string]string, len(b.Description))
	for lang, s := range b.Description {
		desc[string(lang)] = s
	}
	return store.BadgeData{
		ID:          b.ID,
		Icon:        b.Icon,
		Name:        name,
		Description: desc,
		Condition:   b.Condition,
		UnlockedAt:  at,
	}
}
