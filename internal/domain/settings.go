package domain

// Settings guarda as credenciais da API externa de processamento (openEO).
// É um documento único do processo, sobrescrito por inteiro a cada atualização
// e persistido sem criptografia.
type Settings struct {
	OpenEOURL    string `json:"openeo_url"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Complete indica se os três campos obrigatórios estão preenchidos
func (s Settings) Complete() bool {
	return s.OpenEOURL != "" && s.ClientID != "" && s.ClientSecret != ""
}
