package types

type Category byte

const (
	CategoryUnknown     Category = 0
	CategorySymptom     Category = 1
	CategoryTreatment   Category = 2
	CategoryDiagnosis   Category = 3
	CategoryPrognosis   Category = 4
	CategoryStatus      Category = 5
	CategoryPatientName Category = 6
)

// AllCategories lists every resolvable category in a fixed order. Output
// ordering of grouped results must never depend on map iteration.
var AllCategories = []Category{
	CategorySymptom,
	CategoryTreatment,
	CategoryDiagnosis,
	CategoryPrognosis,
	CategoryStatus,
	CategoryPatientName,
}

// CategoryFromName maps a rule-table name back onto the closed enum.
// Unknown names yield CategoryUnknown and are dropped by the normalizer.
func CategoryFromName(name string) Category {
	switch name {
	case "symptom":
		return CategorySymptom
	case "treatment":
		return CategoryTreatment
	case "diagnosis":
		return CategoryDiagnosis
	case "prognosis":
		return CategoryPrognosis
	case "status":
		return CategoryStatus
	case "patient_name":
		return CategoryPatientName
	}
	return CategoryUnknown
}

func (c Category) Name() string {
	switch c {
	case CategorySymptom:
		return "symptom"
	case CategoryTreatment:
		return "treatment"
	case CategoryDiagnosis:
		return "diagnosis"
	case CategoryPrognosis:
		return "prognosis"
	case CategoryStatus:
		return "status"
	case CategoryPatientName:
		return "patient_name"
	}
	return "unknown"
}
