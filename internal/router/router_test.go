package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genotrack/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const researcherID = "researcher-1"

func TestHTTP_EndToEnd_PatientWorkflow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// 1) Alta del paciente (draft)
	patientID := createPatient(t, ts.URL, map[string]any{
		"patient_id": "BR-PACIENTE-0321",
		"name":       "Ana Silva",
		"birth_date": "1980-05-17",
		"gender":     "F",
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID, researcherID, nil)
		require.Equal(t, http.StatusOK, st, string(body))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(body, &rec))
		assert.Equal(t, "draft", rec["stage"])
		assert.Nil(t, rec["genome"])
		assert.Nil(t, rec["gene_phenotype_association"])
	}

	// 2) Un paciente draft no se puede editar
	{
		st, body := doReq(t, ts.URL, "PATCH", "/patients/"+patientID, researcherID, map[string]any{
			"name": "Ana Maria Silva",
		})
		require.Equal(t, http.StatusUnprocessableEntity, st, string(body))
		assert.Equal(t, []string{"é obrigatório"}, validationErrors(t, body)["genome"])
	}

	// 3) Genoma inconsistente con el gen
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/genome", researcherID, ldlrGenome("1"))
		require.Equal(t, http.StatusUnprocessableEntity, st, string(body))
		assert.Equal(t,
			[]string{"inconsistente com o gene LDLR (esperado: 19)"},
			validationErrors(t, body)["chromosome"],
		)
	}

	// 4) Genoma válido => paciente complete
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/genome", researcherID, ldlrGenome("19"))
		require.Equal(t, http.StatusCreated, st, string(body))

		var g map[string]any
		require.NoError(t, json.Unmarshal(body, &g))
		assert.Equal(t, "LDLR:C>T (SNV)", g["variant_description"])
		assert.Equal(t, "19:11200138", g["genomic_coordinates"])
		assert.Equal(t, true, g["is_pathogenic"])
	}

	// 5) Un segundo genoma se rechaza
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/genome", researcherID, ldlrGenome("19"))
		require.Equal(t, http.StatusUnprocessableEntity, st, string(body))
		assert.Equal(t, []string{"já existe para este paciente"}, validationErrors(t, body)["genome"])
	}

	// 6) Fenotipo con código desconocido
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/phenotypes", researcherID, map[string]any{
			"hpo_code":    "HP:9999999",
			"description": "Algo desconhecido",
			"severity":    "mild",
		})
		require.Equal(t, http.StatusUnprocessableEntity, st, string(body))
		assert.Equal(t, []string{"deve ser um código HPO válido no sistema"}, validationErrors(t, body)["hpo_code"])
	}

	// 7) Fenotipo válido, luego duplicado
	phenotype := map[string]any{
		"hpo_code":     "HP:0003124",
		"description":  "Hipercolesterolemia familiar",
		"severity":     "severe",
		"age_of_onset": "adult",
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/phenotypes", researcherID, phenotype)
		require.Equal(t, http.StatusCreated, st, string(body))

		var ph map[string]any
		require.NoError(t, json.Unmarshal(body, &ph))
		assert.Equal(t, "Hipercolesterolemia", ph["hpo_term_name"])
		assert.Equal(t, true, ph["is_severe"])
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/phenotypes", researcherID, phenotype)
		require.Equal(t, http.StatusUnprocessableEntity, st, string(body))
		assert.Equal(t, []string{"já existe para este paciente"}, validationErrors(t, body)["hpo_code"])
	}

	// 8) Vista completa del paciente
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID, researcherID, nil)
		require.Equal(t, http.StatusOK, st, string(body))

		var rec struct {
			Stage          string   `json:"stage"`
			PhenotypeCodes []string `json:"phenotype_codes"`
			Association    *struct {
				Gene       string   `json:"gene"`
				Phenotypes []string `json:"phenotypes"`
				Variant    string   `json:"variant"`
			} `json:"gene_phenotype_association"`
		}
		require.NoError(t, json.Unmarshal(body, &rec))
		assert.Equal(t, "complete", rec.Stage)
		assert.Equal(t, []string{"HP:0003124"}, rec.PhenotypeCodes)
		require.NotNil(t, rec.Association)
		assert.Equal(t, "LDLR", rec.Association.Gene)
		assert.Equal(t, []string{"HP:0003124"}, rec.Association.Phenotypes)
		assert.Equal(t, "LDLR:C>T (SNV)", rec.Association.Variant)
	}

	// 9) Ahora sí se puede editar
	{
		st, body := doReq(t, ts.URL, "PATCH", "/patients/"+patientID, researcherID, map[string]any{
			"name": "Ana Maria Silva",
		})
		require.Equal(t, http.StatusOK, st, string(body))
	}

	// 10) Filtros
	assert.Equal(t, 1, listTotal(t, ts.URL, "/patients?hpo_code=HP:0003124"))
	assert.Equal(t, 1, listTotal(t, ts.URL, "/patients?gene_symbol=LDLR&hpo_code=HP:0003124"))
	assert.Equal(t, 0, listTotal(t, ts.URL, "/patients?gene_symbol=BRCA1"))
	assert.Equal(t, 1, listTotal(t, ts.URL, "/genomes?pathogenic=true&chromosome=19"))
	assert.Equal(t, 1, listTotal(t, ts.URL, "/phenotypes?severe=true"))
	assert.Equal(t, 0, listTotal(t, ts.URL, "/phenotypes?severity=mild"))

	// 11) Borrar el paciente arrastra genoma y fenotipos
	{
		st, body := doReq(t, ts.URL, "DELETE", "/patients/"+patientID, researcherID, nil)
		require.Equal(t, http.StatusNoContent, st, string(body))
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/"+patientID, researcherID, nil)
		assert.Equal(t, http.StatusNotFound, st)
	}
	assert.Equal(t, 0, listTotal(t, ts.URL, "/genomes"))
	assert.Equal(t, 0, listTotal(t, ts.URL, "/phenotypes"))
}

func TestHTTP_CreatePatient_CollectsAllFieldErrors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/patients", researcherID, map[string]any{
		"patient_id": "PAC-1",
		"name":       "A",
		"birth_date": "2999-01-01",
		"gender":     "X",
	})
	require.Equal(t, http.StatusUnprocessableEntity, st, string(body))

	errs := validationErrors(t, body)
	assert.Equal(t, []string{"deve seguir o formato BR-PACIENTE-XXXX"}, errs["patient_id"])
	assert.Equal(t, []string{"é muito curto (mínimo: 2 caracteres)"}, errs["name"])
	assert.Equal(t, []string{"não pode ser no futuro"}, errs["birth_date"])
	assert.Equal(t, []string{"deve ser M, F ou O"}, errs["gender"])
}

func TestHTTP_Genome_NonIntegerPosition(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	patientID := createPatient(t, ts.URL, map[string]any{
		"patient_id": "BR-PACIENTE-0500",
		"name":       "Marta Rocha",
		"birth_date": "1975-02-11",
		"gender":     "F",
	})
	path := "/patients/" + patientID + "/genome"

	for _, bad := range []any{1.5, "123"} {
		payload := ldlrGenome("19")
		payload["position"] = bad
		payload["reference_allele"] = "XYZ"

		st, body := doReq(t, ts.URL, "POST", path, researcherID, payload)
		require.Equal(t, http.StatusUnprocessableEntity, st, string(body))

		errs := validationErrors(t, body)
		assert.Equal(t, []string{"deve ser um número inteiro"}, errs["position"])
		assert.NotEmpty(t, errs["reference_allele"])
	}

	st, body := doReq(t, ts.URL, "POST", path, researcherID, ldlrGenome("19"))
	require.Equal(t, http.StatusCreated, st, string(body))

	st, body = doReq(t, ts.URL, "PATCH", path, researcherID, map[string]any{"position": 2.25})
	require.Equal(t, http.StatusUnprocessableEntity, st, string(body))
	assert.Equal(t, []string{"deve ser um número inteiro"}, validationErrors(t, body)["position"])
}

func TestHTTP_CreatePatient_DuplicateIdentifier(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	payload := map[string]any{
		"patient_id": "BR-PACIENTE-0001",
		"name":       "Carlos Souza",
		"birth_date": "1990-01-01",
		"gender":     "M",
	}
	createPatient(t, ts.URL, payload)

	st, body := doReq(t, ts.URL, "POST", "/patients", researcherID, payload)
	require.Equal(t, http.StatusUnprocessableEntity, st, string(body))
	assert.Equal(t, []string{"já está em uso"}, validationErrors(t, body)["patient_id"])
}

func TestHTTP_NotFoundAndBadRequest(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/does-not-exist", researcherID, nil)
		assert.Equal(t, http.StatusNotFound, st)
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/does-not-exist/genome", researcherID, nil)
		assert.Equal(t, http.StatusNotFound, st)
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/does-not-exist/phenotypes", researcherID, map[string]any{
			"hpo_code":    "HP:0003124",
			"description": "Hipercolesterolemia",
			"severity":    "mild",
		})
		assert.Equal(t, http.StatusNotFound, st)
	}
	{
		res, err := http.Post(ts.URL+"/patients", "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/phenotypes?severity=extreme", researcherID, nil)
		assert.Equal(t, http.StatusBadRequest, st)
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/genomes?pathogenic=maybe", researcherID, nil)
		assert.Equal(t, http.StatusBadRequest, st)
	}
}

func TestHTTP_HealthAndVocabulary(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, body = doReq(t, ts.URL, "GET", "/vocabulary", "", nil)
	require.Equal(t, http.StatusOK, st)

	var vocab struct {
		Genes           []string          `json:"genes"`
		GeneChromosomes map[string]string `json:"gene_chromosomes"`
		HPOTerms        []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"hpo_terms"`
		Severities []string `json:"severities"`
	}
	require.NoError(t, json.Unmarshal(body, &vocab))
	assert.Contains(t, vocab.Genes, "LDLR")
	assert.Equal(t, "19", vocab.GeneChromosomes["LDLR"])
	assert.NotEmpty(t, vocab.HPOTerms)
	assert.Equal(t, []string{"mild", "moderate", "severe", "profound"}, vocab.Severities)
}

func TestHTTP_RateLimit(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{RateLimitRPS: 0.001, RateLimitBurst: 1}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, st)

	st, _ = doReq(t, ts.URL, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, st)
}

func ldlrGenome(chromosome string) map[string]any {
	return map[string]any{
		"gene_symbol":      "LDLR",
		"chromosome":       chromosome,
		"position":         11200138,
		"reference_allele": "C",
		"alternate_allele": "T",
		"variant_type":     "SNV",
		"pathogenicity":    "pathogenic",
	}
}

func createPatient(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/patients", researcherID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create patient, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create patient: missing id body=%s", string(body))
	}
	return resp.ID
}

func listTotal(t *testing.T, baseURL, path string) int {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, researcherID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 on %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Total
}

func validationErrors(t *testing.T, body []byte) map[string][]string {
	t.Helper()

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Errors
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
