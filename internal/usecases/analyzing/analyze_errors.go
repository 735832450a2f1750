package analyzing

import (
	"errors"
	"fmt"
)

// Erros do pipeline de análise de vendas
var (
	// Erros de formato: o arquivo não casa com nenhum dos schemas suportados.
	// Não há retry local; reprocessar um arquivo malformado não muda nada.
	ErrUnreadableFile = errors.New("não foi possível ler o arquivo de vendas")
	ErrUnknownFormat  = errors.New("formato do arquivo de vendas não reconhecido")

	// Erros de qualidade de dados: o arquivo inteiro é rejeitado, nunca um
	// relatório parcial
	ErrTooManyBrokenRows = errors.New("taxa de linhas quebradas acima do limite permitido")

	// Arquivo sem nenhuma linha interpretável
	ErrEmptyInput = errors.New("arquivo de vendas sem linhas interpretáveis")
)

// FormatError é um erro de formato com contexto do arquivo
type FormatError struct {
	Err     error  // Erro base
	Path    string // Caminho do arquivo analisado
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *FormatError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError cria um novo erro de formato
func NewFormatError(baseErr error, path string, details string) *FormatError {
	return &FormatError{
		Err:     baseErr,
		Path:    path,
		Details: details,
	}
}

// DataQualityError carrega os números que levaram à rejeição do arquivo
type DataQualityError struct {
	BrokenPct    float64
	ThresholdPct float64
	RowsTotal    int
	BrokenRows   int
}

// Error implementa a interface error
func (e *DataQualityError) Error() string {
	return fmt.Sprintf("%s: %.2f%% de %d linhas quebradas (limite %.1f%%)",
		ErrTooManyBrokenRows.Error(), e.BrokenPct, e.RowsTotal, e.ThresholdPct)
}

// Unwrap retorna o erro sentinela de qualidade
func (e *DataQualityError) Unwrap() error {
	return ErrTooManyBrokenRows
}

// IsFormatError verifica se o erro é de formato de arquivo
func IsFormatError(err error) bool {
	return errors.Is(err, ErrUnknownFormat) || errors.Is(err, ErrUnreadableFile)
}

// IsDataQualityError verifica se o erro é de qualidade de dados
func IsDataQualityError(err error) bool {
	return errors.Is(err, ErrTooManyBrokenRows)
}

// IsEmptyInputError verifica se o erro é de arquivo vazio
func IsEmptyInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}
