package models

// MapSettings configurações do mapa exibido na página de contato
type MapSettings struct {
	Address string `json:"address"`
	Lat     string `json:"lat"`
	Lng     string `json:"lng"`
}

// VersionResponse marcador de versão dos agendamentos.
// Nulo quando nenhum agendamento foi criado ainda.
type VersionResponse struct {
	Version *string `json:"version"`
}
