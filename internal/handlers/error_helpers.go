package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-app/barbearia-api/internal/httperr"
)

// Mapa canônico: código de negócio → resposta HTTP. Tudo que não estiver
// aqui vira 500 genérico no call site.
var businessResponses = map[string]struct {
	status  int
	message string
}{
	"invalid_date_or_time":     {400, "Data ou hora inválida."},
	"too_soon":                 {400, "Horário inválido."},
	"invalid_status":           {400, "Status inválido."},
	"invalid_transition":       {400, "Transição de status não permitida."},
	"invalid_score":            {400, "Nota deve ser entre 1 e 5."},
	"not_completed":            {400, "Agendamento ainda não foi concluído."},
	"already_rated":            {400, "Agendamento já avaliado."},
	"time_conflict":            {400, "Conflito de horário."},
	"outside_working_hours":    {400, "Fora do horário de atendimento."},
	"barber_unavailable":       {400, "Barbeiro indisponível."},
	"service_not_offered":      {400, "Barbeiro não realiza esse serviço."},
	"client_not_found":         {404, "Cliente não encontrado."},
	"barber_not_found":         {404, "Barbeiro não encontrado."},
	"service_not_found":        {404, "Serviço não encontrado."},
	"not_found":                {404, "Registro não encontrado."},
	"version_conflict":         {409, "Registro alterado por outra operação."},
	"email_already_registered": {400, "E-mail já cadastrado."},
}

// writeBusinessError responde erros de negócio conhecidos. Retorna false
// quando o erro não é de negócio (aí o handler decide o 500).
func writeBusinessError(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	resp, ok := businessResponses[be.Code]
	if !ok {
		return false
	}

	httperr.Write(c, resp.status, be.Code, resp.message)
	return true
}
