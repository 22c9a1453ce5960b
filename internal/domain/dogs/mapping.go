package dogs

import (
	"fmt"
	"math"
	"strconv"

	"dog-profiles/internal/ports/rows"
)

// Headers del formulario de origen. Se comparan de forma exacta (espacios y puntuación incluidos):
// si cambia la redacción del formulario, este es el único lugar a tocar.
const (
	HeaderDogID = "dog_id"

	HeaderDogName  = "Name"
	HeaderDogAge   = "Age"
	HeaderDogSex   = "Sex"
	HeaderDogPhoto = "Photo"

	HeaderOwnerName        = "Pet owner's name"
	HeaderOwnerPhone       = "Pet owner's phone"
	HeaderPreferredContact = "Preferred contact method"

	HeaderFeedingTimes    = "Feeding times (you can choose more than one answer)"
	HeaderFeedingAmount   = "  Amount of food per meal  "
	HeaderAllergies       = "Food or environmental intolerances "
	HeaderAllergiesDetail = "If yes, please details of any food or environmental intolerances:"

	HeaderWalkFrequency = "Going for walks (you can choose more than one answer)"
	HeaderWalkDuration  = "Approximate duration of each walk (in minutes): "

	HeaderBarksInReactionTo = "Barks in reaction to (If none, please just write 'None'):"
	HeaderAfraidOf          = "Is afraid of (If none, please just write 'None'):"
	HeaderOwnersRemark      = "Some remarks we need to know:"
	HeaderMedicalConditions = "Medical conditions / needs (optional)"
)

// FieldMapping asocia un header de la planilla con un campo del Profile.
type FieldMapping struct {
	Path   string // ruta JSON de salida, p.ej. "owner.name"
	Header string
	set    func(p *Profile, v any)
}

var fieldMappings = []FieldMapping{
	{"dog.name", HeaderDogName, func(p *Profile, v any) { p.Dog.Name = v }},
	{"dog.age", HeaderDogAge, func(p *Profile, v any) { p.Dog.Age = v }},
	{"dog.sex", HeaderDogSex, func(p *Profile, v any) { p.Dog.Sex = v }},
	{"dog.photo_url", HeaderDogPhoto, func(p *Profile, v any) { p.Dog.PhotoURL = v }},

	{"owner.name", HeaderOwnerName, func(p *Profile, v any) { p.Owner.Name = v }},
	{"owner.phone", HeaderOwnerPhone, func(p *Profile, v any) { p.Owner.Phone = v }},
	{"owner.preferred_contact", HeaderPreferredContact, func(p *Profile, v any) { p.Owner.PreferredContact = v }},

	{"feeding.times", HeaderFeedingTimes, func(p *Profile, v any) { p.Feeding.Times = v }},
	{"feeding.amount", HeaderFeedingAmount, func(p *Profile, v any) { p.Feeding.Amount = v }},
	{"feeding.allergies", HeaderAllergies, func(p *Profile, v any) { p.Feeding.Allergies = v }},
	{"feeding.allergies_detail", HeaderAllergiesDetail, func(p *Profile, v any) { p.Feeding.AllergiesDetail = v }},

	{"walks.frequency", HeaderWalkFrequency, func(p *Profile, v any) { p.Walks.Frequency = v }},
	{"walks.duration", HeaderWalkDuration, func(p *Profile, v any) { p.Walks.Duration = v }},

	{"behavior.barks_in_reaction_to", HeaderBarksInReactionTo, func(p *Profile, v any) { p.Behavior.BarksInReactionTo = v }},
	{"behavior.afraid_of", HeaderAfraidOf, func(p *Profile, v any) { p.Behavior.AfraidOf = v }},
	{"behavior.owners_remark", HeaderOwnersRemark, func(p *Profile, v any) { p.Behavior.OwnersRemark = v }},
	{"behavior.medical_conditions", HeaderMedicalConditions, func(p *Profile, v any) { p.Behavior.MedicalConditions = v }},
}

// FieldMappings devuelve una copia de la tabla header -> campo.
func FieldMappings() []FieldMapping {
	out := make([]FieldMapping, len(fieldMappings))
	copy(out, fieldMappings)
	return out
}

// MapRow convierte una fila cruda en Profile. position es 1-based.
// No falla nunca: headers ausentes quedan en nil.
func MapRow(row rows.Row, position int) Profile {
	p := Profile{DogID: ResolveDogID(row, position)}
	for _, m := range fieldMappings {
		m.set(&p, row[m.Header])
	}
	return p
}

// ResolveDogID usa la columna dog_id si tiene valor; si no, la posición de la fila.
func ResolveDogID(row rows.Row, position int) string {
	if v := row[HeaderDogID]; truthy(v) {
		return stringify(v)
	}
	return strconv.Itoa(position)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case float32:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

// stringify renderiza un valor de celda. Los números enteros salen sin decimales ("7", no "7.0").
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return stringify(float64(x))
	default:
		return fmt.Sprint(x)
	}
}
