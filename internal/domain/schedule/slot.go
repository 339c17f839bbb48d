package schedule

// Granularidade padrão entre candidatos quando o salão não configurou outra.
const DefaultGranularityMin = 30

// CandidateSlot é um horário candidato produzido pela engine a cada
// consulta. Nunca é persistido nem cacheado: precisa refletir o estado
// atual dos agendamentos.
type CandidateSlot struct {
	Time      string `json:"time"`  // "HH:MM" (24h)
	Label     string `json:"label"` // "9:00 AM"
	Available bool   `json:"available"`
}
