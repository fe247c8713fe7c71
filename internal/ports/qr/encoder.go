package qr

// IEncoder рендер платёжного payload в сканируемую картинку
type IEncoder interface {
	EncodePNG(payload string) ([]byte, error)
}
