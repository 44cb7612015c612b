package evaluation

type Classification string

const (
	ACHIEVED Classification = "ACHIEVED"
	AT_RISK  Classification = "AT_RISK"
	MISSED   Classification = "MISSED"
)

var AllClassifications = []Classification{
	ACHIEVED,
	AT_RISK,
	MISSED,
}

func (c Classification) IsValid() bool {
	for _, v := range AllClassifications {
		if c == v {
			return true
		}
	}
	return false
}

// Color returns the progress-bar color for the classification.
func (c Classification) Color() string {
	switch c {
	case ACHIEVED:
		return "#4CAF50"
	case AT_RISK:
		return "#ff9800"
	default:
		return "#f44336"
	}
}
