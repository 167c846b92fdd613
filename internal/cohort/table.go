package cohort

// Categorical codes used by the generator. Exports write these literally.
const (
	SexF = "F"
	SexM = "M"

	RegionATLCore  = "ATL-Core"
	RegionATLMetro = "ATL-Metro"
	RegionNorthGA  = "North-GA"
	RegionSouthGA  = "South-GA"

	ChannelSMS   = "SMS"
	ChannelEmail = "Email"
	ChannelIVR   = "IVR"

	VariantA = "A"
	VariantB = "B"
)

// Columns is the canonical column order for every export surface.
var Columns = []string{
	"id",
	"age",
	"sex",
	"region",
	"risk_score",
	"barriers_index",
	"prior_cdc_interactions_90d",
	"prior_appointments_1y",
	"missed_appointments_1y",
	"channel",
	"send_hour",
	"weekday",
	"message_variant",
	"opened",
	"clicked",
	"scheduled_7d",
	"completed_30d",
}

// Table holds one generated cohort as parallel column slices, all of equal
// length. Once Generate returns, a Table is never mutated again.
type Table struct {
	ID                  []int
	Age                 []int
	Sex                 []string
	Region              []string
	RiskScore           []float64
	BarriersIndex       []float64
	PriorInteractions90 []int
	PriorAppointments1y []int
	MissedAppointments  []int
	Channel             []string
	SendHour            []int
	Weekday             []int
	MessageVariant      []string
	Opened              []int
	Clicked             []int
	Scheduled7d         []int
	Completed30d        []int
}

func newTable(n int) *Table {
	t := &Table{
		ID:                  make([]int, n),
		Age:                 make([]int, n),
		Sex:                 make([]string, n),
		Region:              make([]string, n),
		RiskScore:           make([]float64, n),
		BarriersIndex:       make([]float64, n),
		PriorInteractions90: make([]int, n),
		PriorAppointments1y: make([]int, n),
		MissedAppointments:  make([]int, n),
		Channel:             make([]string, n),
		SendHour:            make([]int, n),
		Weekday:             make([]int, n),
		MessageVariant:      make([]string, n),
		Opened:              make([]int, n),
		Clicked:             make([]int, n),
		Scheduled7d:         make([]int, n),
		Completed30d:        make([]int, n),
	}
	for i := 0; i < n; i++ {
		t.ID[i] = i + 1
	}
	return t
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.ID)
}
