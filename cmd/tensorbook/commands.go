package main

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/tensorbook/internal/device"
	"github.com/born-ml/tensorbook/internal/notebook"
)

var nameStyle = lipgloss.NewStyle().Bold(true)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tensorbook",
		Short:         "An interactive tour of tensors, autograd and training",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// klog flags (-v, -logtostderr, ...) live on a private set so tests can
	// build several roots without redefining them on flag.CommandLine.
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(newRunCmd(), newListCmd(), newExercisesCmd(), newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cfg := notebook.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "run [cells...]",
		Short: "Run all notebook cells, or only the named ones",
		Args:  cobra.ArbitraryArgs,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return notebook.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := notebook.NewSession(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer session.Close()
			klog.V(1).Infof("tensorbook: %s, seed %d", device.Describe(session.Backend), cfg.Seed)
			return notebook.Run(cmd.Context(), session, args...)
		},
	}
	flags := cmd.Flags()
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for every cell")
	flags.StringVar(&cfg.Device, "device", cfg.Device, "compute device: auto, cpu or webgpu (env "+notebook.DeviceEnv+")")
	flags.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "training epochs")
	flags.Float32Var(&cfg.LearningRate, "lr", cfg.LearningRate, "SGD learning rate")
	flags.Float32Var(&cfg.Momentum, "momentum", cfg.Momentum, "SGD momentum")
	flags.IntVar(&cfg.Samples, "samples", cfg.Samples, "training samples drawn from [-1, 1]")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the notebook cells in order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, c := range notebook.Cells() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", nameStyle.Render(fmt.Sprintf("%-10s", c.Name)), c.Title)
			}
		},
	}
}

func newExercisesCmd() *cobra.Command {
	seed := notebook.DefaultConfig().Seed
	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Solve the ten exercises on a seeded 10x10 matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := device.Select(device.CPU)
			if err != nil {
				return err
			}
			notebook.RenderExercises(cmd.OutOrStdout(), seed, backend)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", seed, "seed of the random matrix")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tensorbook %s\n", version)
		},
	}
}
