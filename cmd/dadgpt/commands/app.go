package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/PatriceDouge/dadgpt/internal/config"
	"github.com/PatriceDouge/dadgpt/internal/permission"
	"github.com/PatriceDouge/dadgpt/internal/storage"
	"github.com/PatriceDouge/dadgpt/internal/tool"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	warnColor  = color.New(color.FgYellow).SprintFunc()
	errColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// app wires the resolver, storage, permission engine and tool registry the
// way a server process would; each CLI invocation builds one.
type app struct {
	resolver *config.Resolver
	store    *storage.Storage
	invoker  *tool.Invoker
}

func newApp() *app {
	resolver := config.New(config.WithProjectDir(GetWorkDir()))
	store := storage.New(config.StoragePath())

	registry := tool.NewRegistry()
	registry.Register(tool.NewGoalTool(store))
	registry.Register(tool.NewTodoTool(store))
	registry.Register(tool.NewFamilyTool(resolver))
	registry.Register(tool.NewConfigTool(resolver))

	engine := permission.NewEngine(resolver)
	return &app{
		resolver: resolver,
		store:    store,
		invoker:  tool.NewInvoker(registry, engine),
	}
}

// runTool invokes a tool, prompting the user when the permission ruleset
// answers ask, and prints the result.
func (a *app) runTool(ctx context.Context, toolID string, input any) error {
	data, err := json.Marshal(input)
	if err != nil {
		return err
	}

	toolCtx := &tool.Context{WorkDir: GetWorkDir(), Approved: autoYes}
	res, err := a.invoker.Invoke(ctx, toolID, data, toolCtx)
	if tool.NeedsConfirmation(err) {
		if !confirm(fmt.Sprintf("Run %q?", toolID)) {
			return fmt.Errorf("aborted")
		}
		toolCtx.Approved = true
		res, err = a.invoker.Invoke(ctx, toolID, data, toolCtx)
	}
	if err != nil {
		if tool.IsRejected(err) {
			return fmt.Errorf("%s %w", errColor("denied:"), err)
		}
		return err
	}

	fmt.Println(titleColor(res.Title))
	if res.Output != "" {
		fmt.Println(res.Output)
	}
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s %s [y/N] ", warnColor("?"), prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
