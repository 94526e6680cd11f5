package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// parseDateRange lee los query params desde/hasta (YYYY-MM-DD). Por defecto,
// los últimos 30 días. "hasta" es inclusivo: se extiende al final del día.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if s := c.Query("desde"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("desde inválido: %q (formato YYYY-MM-DD)", s)
		}
		from = t
	}
	if s := c.Query("hasta"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("hasta inválido: %q (formato YYYY-MM-DD)", s)
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("hasta es anterior a desde")
	}
	return from, to, nil
}
