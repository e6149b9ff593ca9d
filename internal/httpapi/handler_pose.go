package httpapi

import (
	"encoding/json"
	"net/http"

	"sdformat-go/pkg/sdf"
)

type poseRequest struct {
	Pose           string `json:"pose"`
	Degrees        bool   `json:"degrees"`
	RelativeTo     string `json:"relative_to"`
	RotationFormat string `json:"rotation_format"`
}

type poseResponse struct {
	Translation [3]float64 `json:"translation"`
	RPY         [3]float64 `json:"rpy"`
	Quaternion  [4]float64 `json:"quaternion_xyzw"`
	RelativeTo  string     `json:"relative_to,omitempty"`
	Euler       string     `json:"euler"`
	Quat        string     `json:"quat"`
}

// PoseHandler converts a pose text between its Euler and quaternion forms.
func PoseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req poseRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}

		p, err := sdf.ParsePose(req.Pose, sdf.PoseOptions{
			Degrees:        req.Degrees,
			RelativeTo:     req.RelativeTo,
			RotationFormat: req.RotationFormat,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		roll, pitch, yaw := p.RPY()
		x, y, z, qw := p.Quaternion()
		writeJSON(w, http.StatusOK, poseResponse{
			Translation: [3]float64{p.Translation.X, p.Translation.Y, p.Translation.Z},
			RPY:         [3]float64{roll, pitch, yaw},
			Quaternion:  [4]float64{x, y, z, qw},
			RelativeTo:  p.RelativeTo,
			Euler:       p.String(),
			Quat:        p.QuaternionString(),
		})
	}
}
