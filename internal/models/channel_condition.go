package models

// ChannelCondition maps a (recruitment channel, recruitment condition)
// pair to the foreign-key id every campaign references. The table is
// immutable reference data seeded by migration.
type ChannelCondition struct {
	ID                   int64 `json:"id"`
	Channel              int   `json:"channel"`
	RecruitmentCondition int   `json:"recruitment_condition"`
}
