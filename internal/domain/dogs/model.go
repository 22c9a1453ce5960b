package dogs

// Profile es la forma estable que expone la API para cada fila de la planilla.
// Los valores de hoja son escalares (string o número); un header ausente queda en nil => null en JSON.
type Profile struct {
	DogID    string   `json:"dog_id"`
	Dog      Dog      `json:"dog"`
	Owner    Owner    `json:"owner"`
	Feeding  Feeding  `json:"feeding"`
	Walks    Walks    `json:"walks"`
	Behavior Behavior `json:"behavior"`
}

type Dog struct {
	Name     any `json:"name"`
	Age      any `json:"age"`
	Sex      any `json:"sex"`
	PhotoURL any `json:"photo_url"`
}

type Owner struct {
	Name             any `json:"name"`
	Phone            any `json:"phone"`
	PreferredContact any `json:"preferred_contact"`
}

type Feeding struct {
	Times           any `json:"times"`
	Amount          any `json:"amount"`
	Allergies       any `json:"allergies"`
	AllergiesDetail any `json:"allergies_detail"`
}

type Walks struct {
	Frequency any `json:"frequency"`
	Duration  any `json:"duration"`
}

type Behavior struct {
	BarksInReactionTo any `json:"barks_in_reaction_to"`
	AfraidOf          any `json:"afraid_of"`
	OwnersRemark      any `json:"owners_remark"`
	MedicalConditions any `json:"medical_conditions"`
}
