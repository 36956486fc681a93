package genomes

import (
	"fmt"
	"time"
)

// VariantType define la categoría de alteración genómica.
// @Enum SNV, INDEL, CNV, SV
type VariantType string

const (
	VariantSNV   VariantType = "SNV"
	VariantINDEL VariantType = "INDEL"
	VariantCNV   VariantType = "CNV"
	VariantSV    VariantType = "SV"
)

func (t VariantType) Valid() bool {
	switch t {
	case VariantSNV, VariantINDEL, VariantCNV, VariantSV:
		return true
	}
	return false
}

func VariantTypes() []VariantType {
	return []VariantType{VariantSNV, VariantINDEL, VariantCNV, VariantSV}
}

// Pathogenicity es la clasificación clínica de la variante.
// @Enum pathogenic, likely_pathogenic, uncertain, benign, likely_benign
type Pathogenicity string

const (
	Pathogenic       Pathogenicity = "pathogenic"
	LikelyPathogenic Pathogenicity = "likely_pathogenic"
	Uncertain        Pathogenicity = "uncertain"
	Benign           Pathogenicity = "benign"
	LikelyBenign     Pathogenicity = "likely_benign"
)

func (p Pathogenicity) Valid() bool {
	switch p {
	case Pathogenic, LikelyPathogenic, Uncertain, Benign, LikelyBenign:
		return true
	}
	return false
}

// IsPathogenic: pathogenic o likely_pathogenic.
func (p Pathogenicity) IsPathogenic() bool {
	switch p {
	case Pathogenic, LikelyPathogenic:
		return true
	}
	return false
}

func Pathogenicities() []Pathogenicity {
	return []Pathogenicity{Pathogenic, LikelyPathogenic, Uncertain, Benign, LikelyBenign}
}

// Genome es la variante registrada para un paciente (a lo sumo una por paciente).
type Genome struct {
	ID        string
	PatientID string

	GeneSymbol      string
	Chromosome      string
	Position        int64
	ReferenceAllele string
	AlternateAllele string
	VariantType     VariantType
	Pathogenicity   Pathogenicity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VariantDescription: "{gene}:{ref}>{alt} ({type})".
func (g Genome) VariantDescription() string {
	return fmt.Sprintf("%s:%s>%s (%s)", g.GeneSymbol, g.ReferenceAllele, g.AlternateAllele, g.VariantType)
}

// GenomicCoordinates: "{chromosome}:{position}".
func (g Genome) GenomicCoordinates() string {
	return fmt.Sprintf("%s:%d", g.Chromosome, g.Position)
}

func (g Genome) IsPathogenic() bool {
	return g.Pathogenicity.IsPathogenic()
}

// Input es el conjunto completo de campos candidatos.
// Position es puntero para distinguir "ausente" de un valor.
type Input struct {
	GeneSymbol         string
	Chromosome         string
	Position           *int64
	// PositionNotInteger marca que llegó un valor que no es entero (1.5, "123").
	PositionNotInteger bool
	ReferenceAllele    string
	AlternateAllele    string
	VariantType        VariantType
	Pathogenicity      Pathogenicity
}

// Patch: nil = no tocar.
type Patch struct {
	GeneSymbol         *string
	Chromosome         *string
	Position           *int64
	PositionNotInteger bool
	ReferenceAllele    *string
	AlternateAllele    *string
	VariantType        *VariantType
	Pathogenicity      *Pathogenicity
}

// Apply devuelve el candidato resultante de aplicar p sobre g.
func (p Patch) Apply(g Genome) Input {
	pos := g.Position
	in := Input{
		GeneSymbol:         g.GeneSymbol,
		Chromosome:         g.Chromosome,
		Position:           &pos,
		ReferenceAllele:    g.ReferenceAllele,
		AlternateAllele:    g.AlternateAllele,
		VariantType:        g.VariantType,
		Pathogenicity:      g.Pathogenicity,
	}
	if p.GeneSymbol != nil {
		in.GeneSymbol = *p.GeneSymbol
	}
	if p.Chromosome != nil {
		in.Chromosome = *p.Chromosome
	}
	if p.Position != nil {
		v := *p.Position
		in.Position = &v
	}
	in.PositionNotInteger = p.PositionNotInteger
	if p.ReferenceAllele != nil {
		in.ReferenceAllele = *p.ReferenceAllele
	}
	if p.AlternateAllele != nil {
		in.AlternateAllele = *p.AlternateAllele
	}
	if p.VariantType != nil {
		in.VariantType = *p.VariantType
	}
	if p.Pathogenicity != nil {
		in.Pathogenicity = *p.Pathogenicity
	}
	return in
}
