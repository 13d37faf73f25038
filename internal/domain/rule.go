package domain

type RuleMetric string

const (
	MetricDealAmount RuleMetric = "DEAL_AMOUNT"
)

type RuleOperator string

const (
	OperatorGT RuleOperator = "GT"
	OperatorLT RuleOperator = "LT"
	OperatorEQ RuleOperator = "EQ"
)

type RuleAction string

const (
	ActionNotifyAdmin RuleAction = "NOTIFY_ADMIN"
	ActionFlagRisk    RuleAction = "FLAG_RISK"
	ActionAutoApprove RuleAction = "AUTO_APPROVE"
)

// RuleConfig is a configurable alert rule evaluated against deals.
// Only active rules participate in evaluation.
type RuleConfig struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Metric    RuleMetric   `json:"metric"`
	Operator  RuleOperator `json:"operator"`
	Threshold float64      `json:"threshold"`
	Action    RuleAction   `json:"action"`
	Active    bool         `json:"active"`
}
