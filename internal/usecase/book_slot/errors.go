package book_slot

import "errors"

var (
	// ErrJobNotFound возвращается, когда заявка не найдена
	ErrJobNotFound = errors.New("job not found")

	// ErrJobNotSchedulable возвращается, когда статус заявки не допускает запись
	ErrJobNotSchedulable = errors.New("job status does not allow scheduling")

	// ErrJobAlreadyScheduled возвращается, когда у заявки уже есть запись
	ErrJobAlreadyScheduled = errors.New("job already has an appointment")

	// ErrShopClosed возвращается, когда мастерская закрыта в указанную дату
	ErrShopClosed = errors.New("shop is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда работы не помещаются в рабочее окно
	ErrOutsideOperatingHours = errors.New("slot is outside operating hours")

	// ErrSlotNotAvailable возвращается, когда все боксы заняты на запрошенный интервал
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidDuration возвращается при некорректной оценке длительности работ
	ErrInvalidDuration = errors.New("invalid job duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
