// Interactive terminal session against the conversation engine. Handy for
// poking at classification and mini-games without starting the web server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"happybot/internal/application"
	"happybot/internal/config"
	"happybot/internal/infra/logging"
	"happybot/internal/infra/memory"
	"happybot/internal/infra/metrics"
	"happybot/internal/infra/rng"
	"happybot/internal/usecase"
)

type stdoutPresenter struct{}

func (stdoutPresenter) BotMessage(ctx context.Context, text string) {
	fmt.Printf("HappyBot> %s\n", text)
}

func (stdoutPresenter) UserEcho(ctx context.Context, text, username string) {}

func main() {
	ctx := context.Background()

	logger := logging.New(config.LogConfig{Level: "warn", Format: "console"}, true)

	settingsRepo := memory.NewSettingsRepo()
	settingsUC := usecase.NewSettingsUseCase(ctx, settingsRepo, "demo", logger)
	engine := usecase.NewEngineUseCase("demo", settingsUC.Current(ctx).Username, stdoutPresenter{}, rng.New(0), settingsUC, usecase.DefaultTuning(), logger)
	facade := application.NewWidgetFacade(engine, settingsUC)
	metrics.IncSessionStarted("demo")

	facade.Engine.Greet(ctx)
	time.Sleep(usecase.DefaultTuning().HintDelay) // let the hint land

	fmt.Println("(type 'quit' to exit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "quit" {
			break
		}
		if !facade.SubmitText(ctx, line) {
			fmt.Println("(ignored)")
		}
		// Delayed game prompts fire off the engine's timer.
		time.Sleep(usecase.DefaultTuning().GamePromptDelay + 100*time.Millisecond)
	}
}
