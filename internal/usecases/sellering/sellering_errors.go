package sellering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendedores
var (
	ErrSellerNotFound      = errors.New("vendedor não encontrado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidTariff       = errors.New("tarifa inválida")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID          = errors.New("erro ao gerar identificador externo")
)

// SellerError é um erro com contexto adicional do vendedor
type SellerError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	SellerID int    // ID do vendedor envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SellerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SellerError) Unwrap() error {
	return e.Err
}

// NewSellerError cria um novo SellerError
func NewSellerError(baseErr error, code string, details string) *SellerError {
	return &SellerError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewSellerErrorWithID cria um novo SellerError com o ID do vendedor
func NewSellerErrorWithID(baseErr error, code string, sellerID int, details string) *SellerError {
	return &SellerError{
		Err:      baseErr,
		Code:     code,
		SellerID: sellerID,
		Details:  details,
	}
}
