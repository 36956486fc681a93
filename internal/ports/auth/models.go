package auth

// Claims identifica al investigador que hace el request.
type Claims struct {
	ResearcherID string
	Name         string
}
