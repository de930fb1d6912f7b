//
// Copyright (c) 2019-2025 Red Hat, Inc.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-logr/logr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/che-incubator/devworkspace-factory/internal/cmd"
	"github.com/che-incubator/devworkspace-factory/pkg/config"
)

var setupLog = ctrl.Log.WithName("setup")

func main() {
	ctx := ctrl.SetupSignalHandler()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctrl.SetLogger(zap.New(zap.UseDevMode(cfg.DevMode), zap.WriteTo(os.Stderr)))
	setupLog.V(1).Info(fmt.Sprintf("Go Version: %s", runtime.Version()))
	setupLog.V(1).Info(fmt.Sprintf("Go OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH))

	if err := run(ctx, cfg); err != nil {
		setupLog.Error(err, "Command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	ctx = logr.NewContext(ctx, ctrl.Log.WithName("cmd"))
	return cmd.NewRootCommand(cfg, nil).ExecuteContext(ctx)
}
