package main

import (
	"fmt"
	"os"

	appsv1 "github.com/pulumi/pulumi-kubernetes/sdk/v3/go/kubernetes/apps/v1"
	corev1 "github.com/pulumi/pulumi-kubernetes/sdk/v3/go/kubernetes/core/v1"
	metav1 "github.com/pulumi/pulumi-kubernetes/sdk/v3/go/kubernetes/meta/v1"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

func main() {

	deploymentName := "lexdat"
	namespace := deploymentName
	version := os.Getenv("LEXDAT_VERSION")
	pulumi.Run(func(ctx *pulumi.Context) error {

		appLabels := pulumi.StringMap{
			"app":     pulumi.String(deploymentName),
			"version": pulumi.String(version),
		}

		md := &metav1.ObjectMetaArgs{
			Labels:    appLabels,
			Namespace: pulumi.StringPtr(namespace),
			Name:      pulumi.StringPtr(deploymentName),
		}

		svc, err := corev1.NewService(ctx, deploymentName, &corev1.ServiceArgs{
			Metadata: md,
			Spec: corev1.ServiceSpecArgs{
				Ports: corev1.ServicePortArray{
					corev1.ServicePortArgs{
						TargetPort: pulumi.Int(1337),
						Port:       pulumi.Int(80),
					},
				},
				Selector: appLabels,
			},
		},
		)
		if err != nil {
			return err
		}

		ctx.Export("svc name", svc.Metadata.Elem().Name())

		selector := &metav1.LabelSelectorArgs{
			MatchLabels: appLabels,
		}
		dictVolumeName := pulumi.String("lexdat-dictionaries")

		// dictionaries ship inside the image; the volume is an
		// emptyDir scratch space the reload endpoint reads from when
		// an operator drops in a newer dat file.
		dep, err := appsv1.NewDeployment(ctx, deploymentName, &appsv1.DeploymentArgs{
			Metadata: md,
			Spec: appsv1.DeploymentSpecArgs{
				MinReadySeconds: pulumi.Int(10),
				Replicas:        pulumi.Int(3),
				Selector:        selector,
				Template: &corev1.PodTemplateSpecArgs{
					Metadata: &metav1.ObjectMetaArgs{
						Labels: appLabels,
					},
					Spec: &corev1.PodSpecArgs{
						Containers: corev1.ContainerArray{
							corev1.ContainerArgs{
								Name: pulumi.String("lexdat"),
								Args: pulumi.StringArray{
									pulumi.String("/lexdat-server"),
									pulumi.String("-i"), pulumi.String("0.0.0.0"),
									pulumi.String("-d"), pulumi.String("/var/lexdat/words.dat"),
								},
								ImagePullPolicy: pulumi.String("Always"),
								Image:           pulumi.String(fmt.Sprintf("gcr.io/sapient-fabric-207305/lexdat:%s", version)),
								Ports: corev1.ContainerPortArray{
									corev1.ContainerPortArgs{
										ContainerPort: pulumi.Int(1337),
									},
								},
								VolumeMounts: &corev1.VolumeMountArray{
									&corev1.VolumeMountArgs{
										Name:      dictVolumeName,
										MountPath: pulumi.String("/var/lexdat/"),
									},
								},
							},
						},
						Volumes: &corev1.VolumeArray{
							&corev1.VolumeArgs{
								Name:     dictVolumeName,
								EmptyDir: &corev1.EmptyDirVolumeSourceArgs{},
							},
						},
					},
				},
			},
		})

		if err != nil {
			return err
		}

		ctx.Export("deployment name", dep.Metadata.Elem().Name())

		return nil
	})
}
