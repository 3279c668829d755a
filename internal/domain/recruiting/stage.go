package recruiting

// Stage identifies one step of the placement pipeline. The order of
// Stages is the canonical forward order: an applicant is expected to
// reach each stage no earlier than the previous one, although stored
// data may violate that and consumers must tolerate it.
type Stage string

const (
	StageApplication    Stage = "application_date"
	StageCall           Stage = "call_date"
	StageConnection     Stage = "connection_date"
	StageProposal       Stage = "proposal_date"
	StageDocumentSent   Stage = "document_sent_date"
	StageDocumentPassed Stage = "document_passed_date"
	StageInterview      Stage = "interview_date"
	StageOffer          Stage = "offer_date"
	StageHire           Stage = "hire_date"
	StagePayment        Stage = "payment_date"
)

// Stages lists all pipeline stages in canonical order.
var Stages = []Stage{
	StageApplication,
	StageCall,
	StageConnection,
	StageProposal,
	StageDocumentSent,
	StageDocumentPassed,
	StageInterview,
	StageOffer,
	StageHire,
	StagePayment,
}

// IsValidStage reports whether s names a known pipeline stage.
func IsValidStage(s Stage) bool {
	for _, stage := range Stages {
		if stage == s {
			return true
		}
	}
	return false
}
