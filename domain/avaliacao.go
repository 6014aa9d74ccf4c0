package domain

// NotaCriterio is a single 1–5 grade for one criterion inside a submission.
type NotaCriterio struct {
	CriterioID int64 `json:"criterioId" validate:"required"`
	Nota       int   `json:"nota" validate:"required,min=1,max=5"`
}

// ComentarioRequest attaches free text to a submission, optionally bound to a
// specific criterion.
type ComentarioRequest struct {
	CriterioID *int64 `json:"criterioId,omitempty"`
	Texto      string `json:"texto" validate:"required"`
}

// AvaliacaoRequest submits one evaluation of a professor teaching a cadeira.
type AvaliacaoRequest struct {
	ProfessorID    int64               `json:"professorId" validate:"required"`
	CadeiraID      int64               `json:"cadeiraId" validate:"required"`
	Periodo        string              `json:"periodo" validate:"required"`
	NotasCriterios []NotaCriterio      `json:"notasCriterios" validate:"required,min=1,dive"`
	Comentarios    []ComentarioRequest `json:"comentarios,omitempty" validate:"dive"`
}

// NotaPublic is a criterion grade as shown on public evaluation listings.
type NotaPublic struct {
	CriterioNome string  `json:"criterioNome"`
	Nota         float64 `json:"nota"`
}

// AvaliacaoPublic is the anonymized public view of a submitted evaluation.
type AvaliacaoPublic struct {
	ID            int64              `json:"id"`
	Data          string             `json:"data"`
	Periodo       string             `json:"periodo"`
	ProfessorNome string             `json:"professorNome"`
	CadeiraNome   string             `json:"cadeiraNome"`
	Notas         []NotaPublic       `json:"notas"`
	Comentarios   []ComentarioPublic `json:"comentarios"`
}

// ComentarioPublic is a comment with its vote tally. Score is the backend's
// precomputed votosPositivos - votosNegativos.
type ComentarioPublic struct {
	ID             int64  `json:"id"`
	Texto          string `json:"texto"`
	Data           string `json:"data"`
	VotosPositivos int    `json:"votosPositivos"`
	VotosNegativos int    `json:"votosNegativos"`
	Score          int    `json:"score"`
	CriterioNome   string `json:"criterioNome,omitempty"`
}
