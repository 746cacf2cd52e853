package usecase

import (
	"errors"
	"fmt"
)

// ErrorClass classifica a falha de um fluxo transacional
type ErrorClass string

const (
	// ClassValidation: entrada rejeitada antes de abrir transação
	ClassValidation ErrorClass = "validation"
	// ClassStorage: falha ao executar um comando dentro da transação
	ClassStorage ErrorClass = "storage"
	// ClassCommit: falha no commit final
	ClassCommit ErrorClass = "commit"
	// ClassRollback: falha ao desfazer; consistência não garantida
	ClassRollback ErrorClass = "rollback"
)

// Step identifica a etapa do fluxo onde a falha ocorreu
type Step string

const (
	StepValidate         Step = "validate"
	StepBegin            Step = "begin"
	StepSaleInsert       Step = "sale_insert"
	StepLineItem         Step = "line_item"
	StepStockUpdate      Step = "stock_update"
	StepDebtUpdate       Step = "debt_update"
	StepMergeMarker      Step = "merge_marker"
	StepProvisionalList  Step = "provisional_list"
	StepCatalogLookup    Step = "catalog_lookup"
	StepCatalogUpsert    Step = "catalog_upsert"
	StepProvisionalClear Step = "provisional_clear"
	StepCommit           Step = "commit"
	StepRollback         Step = "rollback"
	StepUnknown          Step = "unknown"
)

const (
	workflowSaleCommit = "sale_commit"
	workflowStockMerge = "stock_merge"
)

// WorkflowError é o erro retornado pelos fluxos de venda e de estoque.
// Cause guarda o erro original quando o rollback falha.
type WorkflowError struct {
	Workflow string
	Class    ErrorClass
	Step     Step
	Message  string
	Err      error
	Cause    error
}

func (e *WorkflowError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s/%s: %s", e.Workflow, e.Step, e.Message)
	}
	return fmt.Sprintf("%s/%s: %s: %v", e.Workflow, e.Step, e.Message, e.Err)
}

// Unwrap expõe o erro da etapa e, se houver, o erro original
func (e *WorkflowError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Fatal indica que o estado persistido não pode ser garantido
func (e *WorkflowError) Fatal() bool {
	return e.Class == ClassRollback
}

// Recoverable indica que a operação inteira pode ser repetida
func (e *WorkflowError) Recoverable() bool {
	return !e.Fatal()
}

// AsWorkflowError extrai um WorkflowError da cadeia de erros
func AsWorkflowError(err error) (*WorkflowError, bool) {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr, true
	}
	return nil, false
}

// IsValidation verifica se o erro é de validação de entrada
func IsValidation(err error) bool {
	wfErr, ok := AsWorkflowError(err)
	return ok && wfErr.Class == ClassValidation
}

// IsFatal verifica se o erro exige intervenção do operador
func IsFatal(err error) bool {
	wfErr, ok := AsWorkflowError(err)
	return ok && wfErr.Fatal()
}

func validationError(workflow string, err error) *WorkflowError {
	return &WorkflowError{
		Workflow: workflow,
		Class:    ClassValidation,
		Step:     StepValidate,
		Message:  "dados inválidos",
		Err:      err,
	}
}

func stepError(step Step, message string, err error) *WorkflowError {
	return &WorkflowError{
		Class:   ClassStorage,
		Step:    step,
		Message: message,
		Err:     err,
	}
}
