package domain

// Professor is the summary view returned by list endpoints.
type Professor struct {
	ID           int64   `json:"id"`
	NomeCompleto string  `json:"nomeCompleto"`
	PhotoURL     string  `json:"photoUrl,omitempty"`
	NotaGeral    float64 `json:"notaGeral,omitempty"`
}

// ProfessorDetail is the expanded view for the professor page: subjects taught
// plus the per-criterion averages.
type ProfessorDetail struct {
	Professor
	Cadeiras           []Cadeira          `json:"cadeiras"`
	CriteriosComMedias []CriterioComMedia `json:"criteriosComMedias"`
}

// CriterioComMedia pairs a criterion with its average grade for one professor.
type CriterioComMedia struct {
	Criterio   Criterio `json:"criterio"`
	MediaNotas float64  `json:"mediaNotas"`
}

// ProfessorRequest creates or replaces a professor.
type ProfessorRequest struct {
	NomeCompleto string  `json:"nomeCompleto" validate:"required"`
	PhotoURL     string  `json:"photoUrl,omitempty"`
	CadeiraIDs   []int64 `json:"cadeiraIds"`
}

// Cadeira is a course offering. CursoNome is filled on list views only.
type Cadeira struct {
	ID           int64  `json:"id,omitempty"`
	Nome         string `json:"nome"`
	CargaHoraria int    `json:"cargaHoraria"`
	IsEletiva    bool   `json:"isEletiva"`
	CursoID      int64  `json:"cursoId"`
	CursoNome    string `json:"cursoNome,omitempty"`
}

// Criterio is an evaluation criterion (didactics, punctuality, ...).
type Criterio struct {
	ID        int64  `json:"id,omitempty"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// Curso is a degree program grouping cadeiras.
type Curso struct {
	ID   int64  `json:"id,omitempty"`
	Nome string `json:"nome"`
}
