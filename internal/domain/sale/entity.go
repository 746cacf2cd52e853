package sale

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveTotal    = errors.New("total deve ser maior que zero")
	ErrNonPositiveReceived = errors.New("valor recebido deve ser maior que zero")
	ErrInvalidPayment      = errors.New("método de pagamento inválido")
	ErrMissingOperator     = errors.New("operador não informado")
	ErrInvalidCustomer     = errors.New("cliente inválido")
	ErrChangeMismatch      = errors.New("troco não corresponde a recebido menos total")
	ErrNegativeDebt        = errors.New("dívida não pode ser negativa")
	ErrDebtMismatch        = errors.New("dívida não corresponde ao valor em aberto")
	ErrMissingItems        = errors.New("lista de itens não informada")
	ErrInvalidItem         = errors.New("item de venda inválido")
)

// PaymentMethod define a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"     // Dinheiro
	PaymentTransfer PaymentMethod = "transfer" // Transferência
	PaymentCredit   PaymentMethod = "credit"   // Fiado / crédito
)

// ParsePaymentMethod normaliza o método de pagamento
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCredit:
		return m, nil
	default:
		return "", ErrInvalidPayment
	}
}

// Sale representa o cabeçalho de uma venda
type Sale struct {
	ID              int64           `json:"id"`
	Total           decimal.Decimal `json:"total"`
	Received        decimal.Decimal `json:"received"`
	Change          decimal.Decimal `json:"change"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	CustomerID      *int64          `json:"customer_id,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerTaxCode string          `json:"customer_tax_code,omitempty"`
	Debt            decimal.Decimal `json:"debt"`
	UserID          int64           `json:"user_id"`
	Items           []LineItem      `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LineItem representa um item de venda.
// UnitPrice é o preço capturado no momento da venda.
type LineItem struct {
	ID          int64           `json:"id"`
	SaleID      int64           `json:"sale_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Subtotal retorna quantidade vezes preço unitário
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Validate verifica um item do carrinho
func (i LineItem) Validate() error {
	if i.ProductID <= 0 {
		return fmt.Errorf("%w: produto não informado", ErrInvalidItem)
	}
	if !i.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantidade deve ser maior que zero", ErrInvalidItem)
	}
	if i.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: preço não pode ser negativo", ErrInvalidItem)
	}
	return nil
}

// ExpectedDebt retorna max(0, total - recebido)
func ExpectedDebt(total, received decimal.Decimal) decimal.Decimal {
	open := total.Sub(received)
	if open.IsNegative() {
		return decimal.Zero
	}
	return open
}

// NewSale cria uma venda validando os valores informados pelo caixa
func NewSale(
	total decimal.Decimal,
	received decimal.Decimal,
	change decimal.Decimal,
	method PaymentMethod,
	customerID *int64,
	debt decimal.Decimal,
	userID int64,
	items []LineItem,
) (*Sale, error) {
	if !total.IsPositive() {
		return nil, ErrNonPositiveTotal
	}
	if !received.IsPositive() {
		return nil, ErrNonPositiveReceived
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, ErrMissingOperator
	}
	if customerID != nil && *customerID <= 0 {
		return nil, ErrInvalidCustomer
	}
	if !change.Equal(received.Sub(total)) {
		return nil, ErrChangeMismatch
	}
	if debt.IsNegative() {
		return nil, ErrNegativeDebt
	}
	if !debt.Equal(ExpectedDebt(total, received)) {
		return nil, ErrDebtMismatch
	}
	if items == nil {
		return nil, ErrMissingItems
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", idx+1, err)
		}
	}

	return &Sale{
		Total:         total,
		Received:      received,
		Change:        change,
		PaymentMethod: method,
		CustomerID:    customerID,
		Debt:          debt,
		UserID:        userID,
		Items:         items,
		CreatedAt:     time.Now(),
	}, nil
}

// HasDebtToRecord indica se a dívida deve ser lançada na conta do cliente
func (s *Sale) HasDebtToRecord() bool {
	return s.CustomerID != nil && s.Debt.IsPositive()
}
