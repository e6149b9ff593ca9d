package sdf

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestCameraFragment(t *testing.T) {
	t.Parallel()

	doc := `<camera>
            <horizontal_fov>1.047</horizontal_fov>
            <image>
                <width>320</width>
                <height>240</height>
            </image>
            <clip>
                <near>0.1</near>
                <far>100</far>
            </clip>
        </camera>`
	var cam SdfCamera
	if err := xml.Unmarshal([]byte(doc), &cam); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	if cam.HorizontalFov != 1.047 || cam.Image.Width != "320" || cam.Image.Height != "240" {
		t.Fatalf("camera = %+v", cam)
	}
	if cam.Clip.Near != 0.1 || cam.Clip.Far != 100 {
		t.Fatalf("clip = %+v", cam.Clip)
	}
	if cam.Name != nil || cam.Pose != nil || cam.Image.Format != nil {
		t.Fatalf("absent optional fields were set: %+v", cam)
	}
}

func TestPoseFragment(t *testing.T) {
	t.Parallel()

	var el SdfPose
	if err := xml.Unmarshal([]byte(`<pose>1 0 0 0 0 0</pose>`), &el); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	p, err := el.Pose()
	if err != nil {
		t.Fatalf("Pose() error = %v", err)
	}
	if p.Translation != (Vector3d{X: 1}) {
		t.Fatalf("Translation = %+v", p.Translation)
	}
}

func TestBoxFragment(t *testing.T) {
	t.Parallel()

	var box SdfBoxShape
	if err := xml.Unmarshal([]byte(`<box><size>0 0 1</size></box>`), &box); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	if box.Size != (Vector3d{Z: 1}) {
		t.Fatalf("Size = %+v", box.Size)
	}
	if err := xml.Unmarshal([]byte(`<box><size>0 1</size></box>`), &box); err == nil {
		t.Fatal("xml.Unmarshal(2-value size) succeeded")
	}
}

func TestLightDirection(t *testing.T) {
	t.Parallel()

	light := SdfLight{Name: "sun", Type: "directional", Direction: NewVector3d(4, 5, 6)}
	out, err := xml.Marshal(light)
	if err != nil {
		t.Fatalf("xml.Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), `<direction>4 5 6</direction>`) {
		t.Fatalf("xml.Marshal() = %s", out)
	}
	if !strings.HasPrefix(string(out), `<light name="sun" type="directional">`) {
		t.Fatalf("xml.Marshal() = %s", out)
	}

	var back SdfLight
	if err := xml.Unmarshal(out, &back); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	if back.Direction != light.Direction {
		t.Fatalf("Direction = %+v, want %+v", back.Direction, light.Direction)
	}
}

func TestWorldDocument(t *testing.T) {
	t.Parallel()

	doc := `<sdf version="1.10">
  <world name="default">
    <gravity>0 0 -9.8</gravity>
    <model name="robot" canonical_link="base">
      <static>true</static>
      <pose degrees="true">0 0 0.5 0 0 90</pose>
      <link name="base">
        <inertial><mass>2.5</mass></inertial>
        <visual name="body">
          <geometry><box><size>1 1 1</size></box></geometry>
        </visual>
        <collision name="body">
          <geometry><cylinder><radius>0.5</radius><length>1</length></cylinder></geometry>
        </collision>
      </link>
      <model name="arm">
        <link name="shoulder"/>
      </model>
      <frame name="tool" attached_to="base"><pose>0 0 1 0 0 0</pose></frame>
      <plugin name="ctrl" filename="libctrl.so"><gain>3</gain></plugin>
    </model>
  </world>
</sdf>`
	var root SdfRoot
	if err := xml.Unmarshal([]byte(doc), &root); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	if root.Version != "1.10" || len(root.World) != 1 {
		t.Fatalf("root = %+v", root)
	}
	world := root.World[0]
	if world.Gravity == nil || *world.Gravity != NewVector3d(0, 0, -9.8) {
		t.Fatalf("gravity = %v", world.Gravity)
	}
	if len(world.Model) != 1 {
		t.Fatalf("models = %d", len(world.Model))
	}
	model := world.Model[0]
	if model.Static == nil || !*model.Static || *model.CanonicalLink != "base" {
		t.Fatalf("model = %+v", model)
	}
	if len(model.Model) != 1 || model.Model[0].Name != "arm" || len(model.Model[0].Link) != 1 {
		t.Fatalf("nested models = %+v", model.Model)
	}
	link := model.Link[0]
	if link.Inertial == nil || link.Inertial.Mass == nil || *link.Inertial.Mass != 2.5 {
		t.Fatalf("inertial = %+v", link.Inertial)
	}
	if _, ok := link.Visual[0].Geometry.Shape.(*SdfBoxShape); !ok {
		t.Fatalf("visual shape = %T", link.Visual[0].Geometry.Shape)
	}
	if _, ok := link.Collision[0].Geometry.Shape.(*SdfCylinderShape); !ok {
		t.Fatalf("collision shape = %T", link.Collision[0].Geometry.Shape)
	}
	frame, err := model.Frame[0].Transform()
	if err != nil || frame.RelativeTo != "base" || frame.Translation != NewVector3d(0, 0, 1) {
		t.Fatalf("frame = %+v, %v", frame, err)
	}
	if len(model.Plugin) != 1 || model.Plugin[0].Filename != "libctrl.so" {
		t.Fatalf("plugins = %+v", model.Plugin)
	}
	gain, ok := model.Plugin[0].Elements.Get("gain")
	if !ok {
		t.Fatal("plugin lost <gain>")
	}
	if text, _ := gain.Text(); text != "3" {
		t.Fatalf("gain = %q", text)
	}

	out, err := xml.Marshal(root)
	if err != nil {
		t.Fatalf("xml.Marshal() error = %v", err)
	}
	var again SdfRoot
	if err := xml.Unmarshal(out, &again); err != nil {
		t.Fatalf("xml.Unmarshal(re-encoded) error = %v", err)
	}
	if !again.World[0].Model[0].Plugin[0].Element().Equal(model.Plugin[0].Element()) {
		t.Fatalf("plugin changed across re-encoding: %s", out)
	}
	if _, ok := again.World[0].Model[0].Link[0].Visual[0].Geometry.Shape.(*SdfBoxShape); !ok {
		t.Fatalf("re-encoded visual shape lost: %s", out)
	}
}

func TestFrameTransformDefaults(t *testing.T) {
	t.Parallel()

	parent := "base"
	f := SdfFrame{Name: "tool", AttachedTo: &parent}
	p, err := f.Transform()
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if p.RelativeTo != "base" || p.Translation != (Vector3d{}) {
		t.Fatalf("Transform() = %+v", p)
	}

	rel := "world"
	f.Pose = &SdfPose{RelativeTo: &rel, Data: "1 2 3 0 0 0"}
	p, err = f.Transform()
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if p.RelativeTo != "world" || p.Translation != NewVector3d(1, 2, 3) {
		t.Fatalf("Transform() = %+v", p)
	}
}
