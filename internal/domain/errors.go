package domain

import "errors"

// Ошибки платёжного флоу. Ловятся на границе, где возникли, логируются
// и превращаются в короткий ответ пользователю или HTTP статус.
var (
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrGatewayRejected    = errors.New("payment gateway rejected request")
	ErrNoPaymentID        = errors.New("webhook payload has no payment id")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована и отвечена
// пользователю в UseCase — роутер её не репортит повторно
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
