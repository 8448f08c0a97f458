package domain

// User-facing texts rendered by the API. The venue operates in Brazilian Portuguese.
const (
	MsgDuplicateUsername   = "Este nome de usuário já existe."
	MsgRegistered          = "Cadastro realizado com sucesso! Faça o login."
	MsgInvalidCredentials  = "Usuário ou senha inválidos."
	MsgInvalidUser         = "Todos os campos são obrigatórios."
	MsgReservationNotFound = "Reserva não encontrada."
	MsgInvalidReservation  = "Dados da reserva inválidos."
	MsgForbidden           = "Acesso negado."
	MsgNoPending           = "Nenhuma reserva em andamento."
	MsgInvalidTransition   = "Esta ação não é permitida no estado atual da reserva."
	MsgSessionExpired      = "Sessão expirada. Faça o login novamente."
	MsgSuggestionNotFound  = "Nenhuma sugestão solicitada para esta reserva."
	MsgGenericFailure      = "Não foi possível concluir a operação. Tente novamente."
	MsgStorageWarning      = "As alterações estão salvas apenas nesta sessão; o armazenamento está indisponível."
	MsgSuggestionFailure   = "Desculpe, não foi possível gerar uma sugestão no momento. Por favor, tente novamente mais tarde."
	MsgContractPlaceholder = "Visualizador de PDF para o contrato de: "
	MsgNoContracts         = "Nenhuma reserva encontrada para associar a um contrato."
	MsgInvalidPayload      = "Requisição inválida."
	MsgLoginRequired       = "Faça o login para continuar."
	MsgInvalidAuthHeader   = "Cabeçalho de autorização inválido."
	MsgInvalidToken        = "Token de acesso inválido."
	MsgRouteNotFound       = "Recurso não encontrado."
	MsgMethodNotAllowed    = "Método não permitido."
)

// Details attached to ErrInvalidReservation. They name the JSON field the
// client sent, as the request validator does.
const (
	detailRequired     = "%s é obrigatório"
	detailMinGuests    = "guest_count deve ser no mínimo 1"
	detailDateFormat   = "date deve seguir o formato AAAA-MM-DD"
	detailTimeFormat   = "time deve seguir o formato HH:MM"
	detailUnknownOccas = "ocasião desconhecida: %q"
	detailUnknownEvent = "tipo de evento desconhecido: %q"
)
