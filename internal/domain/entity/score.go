package entity

// Score holds the per-criterion judgment for one battle
type Score struct {
	ID       int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	BattleID int64 `json:"battleId" gorm:"not null;uniqueIndex"`

	ChallengerOriginality int `json:"userOriginality" gorm:"column:user_originality"`
	ChallengerLogic       int `json:"userLogic" gorm:"column:user_logic"`
	ChallengerExpression  int `json:"userExpression" gorm:"column:user_expression"`
	OpponentOriginality   int `json:"aiOriginality" gorm:"column:ai_originality"`
	OpponentLogic         int `json:"aiLogic" gorm:"column:ai_logic"`
	OpponentExpression    int `json:"aiExpression" gorm:"column:ai_expression"`

	JudgeFeedback string `json:"judgeFeedback" gorm:"type:text"`

	ChallengerOriginalityFeedback string `json:"userOriginalityFeedback" gorm:"column:user_originality_feedback;type:text"`
	ChallengerLogicFeedback       string `json:"userLogicFeedback" gorm:"column:user_logic_feedback;type:text"`
	ChallengerExpressionFeedback  string `json:"userExpressionFeedback" gorm:"column:user_expression_feedback;type:text"`
	OpponentOriginalityFeedback   string `json:"aiOriginalityFeedback" gorm:"column:ai_originality_feedback;type:text"`
	OpponentLogicFeedback         string `json:"aiLogicFeedback" gorm:"column:ai_logic_feedback;type:text"`
	OpponentExpressionFeedback    string `json:"aiExpressionFeedback" gorm:"column:ai_expression_feedback;type:text"`
}

// TableName returns the table name for GORM
func (Score) TableName() string {
	return "scores"
}

// ChallengerTotal returns the sum of the challenger's subscores
func (s *Score) ChallengerTotal() int {
	return s.ChallengerOriginality + s.ChallengerLogic + s.ChallengerExpression
}

// OpponentTotal returns the sum of the opponent's subscores
func (s *Score) OpponentTotal() int {
	return s.OpponentOriginality + s.OpponentLogic + s.OpponentExpression
}
