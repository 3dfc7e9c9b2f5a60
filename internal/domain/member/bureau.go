package member

import "time"

type CreditRating string

const (
	RatingExcelente CreditRating = "EXCELENTE"
	RatingBueno     CreditRating = "BUENO"
	RatingRegular   CreditRating = "REGULAR"
	// Defined by the rating scale but never produced by the payment
	// path: no component penalizes missed payments yet.
	RatingMalo   CreditRating = "MALO"
	RatingNegado CreditRating = "NEGADO"
)

// Score policy. A successful installment payment is worth a fixed bonus,
// capped at the score ceiling. Members with no bureau history start from
// the baseline.
const (
	ScoreBaseline     = 800
	ScoreCeiling      = 1000
	PaymentScoreBonus = 10
)

// CreditBureauProfile is the member's internal risk record, mutated only
// when an installment payment succeeds.
type CreditBureauProfile struct {
	Score           int          `json:"score"`
	Rating          CreditRating `json:"rating"`
	LastUpdate      time.Time    `json:"last_update"`
	TotalLoans      int          `json:"total_loans"`
	DelinquencyDays int          `json:"delinquency_days"`
}

// RatingForScore maps a score to its tier.
func RatingForScore(score int) CreditRating {
	switch {
	case score > 900:
		return RatingExcelente
	case score > 750:
		return RatingBueno
	default:
		return RatingRegular
	}
}

// RewardPayment applies the on-time payment bonus and rebuilds the
// derived fields. DelinquencyDays resets unconditionally: there is no
// overdue clock in this system.
func (m *Member) RewardPayment(at time.Time) {
	score := ScoreBaseline
	if m.Bureau != nil {
		score = m.Bureau.Score
	}
	score += PaymentScoreBonus
	if score > ScoreCeiling {
		score = ScoreCeiling
	}
	m.Bureau = &CreditBureauProfile{
		Score:           score,
		Rating:          RatingForScore(score),
		LastUpdate:      at,
		TotalLoans:      len(m.Loans),
		DelinquencyDays: 0,
	}
}
