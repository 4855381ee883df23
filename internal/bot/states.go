package bot

// Step is a position in the request form.
type Step int

const (
	StepIdle Step = iota
	StepName
	StepPhone
	StepRegion
	StepPeriod
	StepLevel
	StepStartDates
	StepVisa
	StepBudget
	StepMessage
)

var stepNames = map[Step]string{
	StepIdle:       "idle",
	StepName:       "waiting_for_name",
	StepPhone:      "waiting_for_phone",
	StepRegion:     "waiting_for_region",
	StepPeriod:     "waiting_for_period",
	StepLevel:      "waiting_for_level",
	StepStartDates: "waiting_for_start_dates",
	StepVisa:       "waiting_for_visa",
	StepBudget:     "waiting_for_budget",
	StepMessage:    "waiting_for_message",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return "unknown"
}

// Next returns the step that follows s. StepMessage is followed by StepIdle.
func (s Step) Next() Step {
	if s >= StepIdle && s < StepMessage {
		return s + 1
	}

	return StepIdle
}

// Field returns the form field collected at s, or "" for StepIdle.
func (s Step) Field() Field {
	switch s {
	case StepName:
		return FieldName
	case StepPhone:
		return FieldPhone
	case StepRegion:
		return FieldRegion
	case StepPeriod:
		return FieldPeriod
	case StepLevel:
		return FieldLevel
	case StepStartDates:
		return FieldStartDates
	case StepVisa:
		return FieldVisa
	case StepBudget:
		return FieldBudget
	case StepMessage:
		return FieldMessage
	}

	return ""
}

// FormSteps lists the steps that collect a field, in order.
var FormSteps = []Step{
	StepName,
	StepPhone,
	StepRegion,
	StepPeriod,
	StepLevel,
	StepStartDates,
	StepVisa,
	StepBudget,
	StepMessage,
}

// Field names a collected answer.
type Field string

const (
	FieldName       Field = "name"
	FieldPhone      Field = "phone"
	FieldTelegram   Field = "telegram"
	FieldRegion     Field = "region"
	FieldPeriod     Field = "period"
	FieldLevel      Field = "level"
	FieldStartDates Field = "start_dates"
	FieldVisa       Field = "visa"
	FieldBudget     Field = "budget"
	FieldMessage    Field = "message"
)

// Session is the in-progress form of one user.
type Session struct {
	Step   Step
	Fields map[Field]string
}

// NewSession returns a session positioned at the first question.
func NewSession() Session {
	return Session{
		Step:   StepName,
		Fields: make(map[Field]string),
	}
}

func (s Session) clone() Session {
	fields := make(map[Field]string, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}

	return Session{Step: s.Step, Fields: fields}
}
