package server

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"trivia-titans/internal/trivia"
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("avatar", func(fl validator.FieldLevel) bool {
			_, err := trivia.ParseAvatar(fl.Field().String())
			return err == nil
		})
		_ = engine.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
			_, err := trivia.ParseMode(fl.Field().String())
			return err == nil
		})
		_ = engine.RegisterValidation("judgment", func(fl validator.FieldLevel) bool {
			_, err := trivia.ParseJudgment(fl.Field().String())
			return err == nil
		})
		_ = engine.RegisterValidation("source", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "", sourceAI, sourceStatic:
				return true
			}
			return false
		})
	})
}
