package fbx

// Built-in template defaults per object class. These mirror the
// property sets FBX readers assume for each class; the exact names,
// kinds and values are part of the format contract for version 7300.

var modelDefaults = []TemplateProp{
	{"QuaternionInterpolate", PropBool, false},
	{"RotationOffset", PropVector3D, [3]float64{0, 0, 0}},
	{"RotationPivot", PropVector3D, [3]float64{0, 0, 0}},
	{"ScalingOffset", PropVector3D, [3]float64{0, 0, 0}},
	{"ScalingPivot", PropVector3D, [3]float64{0, 0, 0}},
	{"TranslationActive", PropBool, false},
	{"TranslationMin", PropVector3D, [3]float64{0, 0, 0}},
	{"TranslationMax", PropVector3D, [3]float64{0, 0, 0}},
	{"TranslationMinX", PropBool, false},
	{"TranslationMinY", PropBool, false},
	{"TranslationMinZ", PropBool, false},
	{"TranslationMaxX", PropBool, false},
	{"TranslationMaxY", PropBool, false},
	{"TranslationMaxZ", PropBool, false},
	{"RotationOrder", PropEnum, 0},
	{"RotationSpaceForLimitOnly", PropBool, false},
	{"RotationStiffnessX", PropDouble, 0.0},
	{"RotationStiffnessY", PropDouble, 0.0},
	{"RotationStiffnessZ", PropDouble, 0.0},
	{"AxisLen", PropDouble, 10.0},
	{"PreRotation", PropVector3D, [3]float64{0, 0, 0}},
	{"PostRotation", PropVector3D, [3]float64{0, 0, 0}},
	{"RotationActive", PropBool, false},
	{"RotationMin", PropVector3D, [3]float64{0, 0, 0}},
	{"RotationMax", PropVector3D, [3]float64{0, 0, 0}},
	{"RotationMinX", PropBool, false},
	{"RotationMinY", PropBool, false},
	{"RotationMinZ", PropBool, false},
	{"RotationMaxX", PropBool, false},
	{"RotationMaxY", PropBool, false},
	{"RotationMaxZ", PropBool, false},
	{"InheritType", PropEnum, 0},
	{"ScalingActive", PropBool, false},
	{"ScalingMin", PropVector3D, [3]float64{0, 0, 0}},
	{"ScalingMax", PropVector3D, [3]float64{1, 1, 1}},
	{"ScalingMinX", PropBool, false},
	{"ScalingMinY", PropBool, false},
	{"ScalingMinZ", PropBool, false},
	{"ScalingMaxX", PropBool, false},
	{"ScalingMaxY", PropBool, false},
	{"ScalingMaxZ", PropBool, false},
	{"GeometricTranslation", PropVector3D, [3]float64{0, 0, 0}},
	{"GeometricRotation", PropVector3D, [3]float64{0, 0, 0}},
	{"GeometricScaling", PropVector3D, [3]float64{1, 1, 1}},
	{"MinDampRangeX", PropDouble, 0.0},
	{"MinDampRangeY", PropDouble, 0.0},
	{"MinDampRangeZ", PropDouble, 0.0},
	{"MaxDampRangeX", PropDouble, 0.0},
	{"MaxDampRangeY", PropDouble, 0.0},
	{"MaxDampRangeZ", PropDouble, 0.0},
	{"MinDampStrengthX", PropDouble, 0.0},
	{"MinDampStrengthY", PropDouble, 0.0},
	{"MinDampStrengthZ", PropDouble, 0.0},
	{"MaxDampStrengthX", PropDouble, 0.0},
	{"MaxDampStrengthY", PropDouble, 0.0},
	{"MaxDampStrengthZ", PropDouble, 0.0},
	{"PreferedAngleX", PropDouble, 0.0},
	{"PreferedAngleY", PropDouble, 0.0},
	{"PreferedAngleZ", PropDouble, 0.0},
	{"LookAtProperty", PropObject, nil},
	{"UpVectorProperty", PropObject, nil},
	{"Show", PropBool, true},
	{"NegativePercentShapeSupport", PropBool, true},
	{"DefaultAttributeIndex", PropInteger, -1},
	{"Freeze", PropBool, false},
	{"LODBox", PropBool, false},
	{"Lcl Translation", PropLclTranslation, [3]float64{0, 0, 0}},
	{"Lcl Rotation", PropLclRotation, [3]float64{0, 0, 0}},
	{"Lcl Scaling", PropLclScaling, [3]float64{1, 1, 1}},
	{"Visibility", PropVisibility, 1.0},
}

var cameraDefaults = []TemplateProp{
	{"Color", PropColorRGB, [3]float64{0.8, 0.8, 0.8}},
	{"Position", PropVector3D, [3]float64{0, 0, -50}},
	{"UpVector", PropVector3D, [3]float64{0, 1, 0}},
	{"InterestPosition", PropVector3D, [3]float64{0, 0, 0}},
	{"Roll", PropDouble, 0.0},
	{"OpticalCenterX", PropDouble, 0.0},
	{"OpticalCenterY", PropDouble, 0.0},
	{"BackgroundColor", PropColorRGB, [3]float64{0.63, 0.63, 0.63}},
	{"TurnTable", PropDouble, 0.0},
	{"DisplayTurnTableIcon", PropBool, false},
	{"UseMotionBlur", PropBool, false},
	{"UseRealTimeMotionBlur", PropBool, true},
	{"Motion Blur Intensity", PropDouble, 1.0},
	{"AspectRatioMode", PropEnum, 0},
	{"AspectWidth", PropDouble, 320.0},
	{"AspectHeight", PropDouble, 200.0},
	{"PixelAspectRatio", PropDouble, 1.0},
	{"FilmOffsetX", PropDouble, 0.0},
	{"FilmOffsetY", PropDouble, 0.0},
	{"FilmWidth", PropDouble, 0.816},
	{"FilmHeight", PropDouble, 0.612},
	{"FilmAspectRatio", PropDouble, 1.3333333333333333},
	{"FilmSqueezeRatio", PropDouble, 1.0},
	{"FilmFormatIndex", PropEnum, 0},
	{"PreScale", PropDouble, 1.0},
	{"FilmTranslateX", PropDouble, 0.0},
	{"FilmTranslateY", PropDouble, 0.0},
	{"FilmRollPivotX", PropDouble, 0.0},
	{"FilmRollPivotY", PropDouble, 0.0},
	{"FilmRollValue", PropDouble, 0.0},
	{"FilmRollOrder", PropEnum, 0},
	{"ApertureMode", PropEnum, 2},
	{"GateFit", PropEnum, 0},
	{"FieldOfView", PropFieldOfView, 25.114999771118164},
	{"FieldOfViewX", PropFieldOfViewX, 40.0},
	{"FieldOfViewY", PropFieldOfViewY, 40.0},
	{"FocalLength", PropDouble, 34.89327621672628},
	{"CameraFormat", PropEnum, 0},
	{"UseFrameColor", PropBool, false},
	{"FrameColor", PropColorRGB, [3]float64{0.3, 0.3, 0.3}},
	{"ShowName", PropBool, true},
	{"ShowInfoOnMoving", PropBool, true},
	{"ShowGrid", PropBool, true},
	{"ShowOpticalCenter", PropBool, false},
	{"ShowAzimut", PropBool, true},
	{"ShowTimeCode", PropBool, false},
	{"ShowAudio", PropBool, false},
	{"AudioColor", PropVector3D, [3]float64{0, 1, 0}},
	{"NearPlane", PropDouble, 10.0},
	{"FarPlane", PropDouble, 4000.0},
	{"AutoComputeClipPanes", PropBool, false},
	{"ViewCameraToLookAt", PropBool, true},
	{"ViewFrustumNearFarPlane", PropBool, false},
	{"ViewFrustumBackPlaneMode", PropEnum, 2},
	{"BackPlaneDistance", PropDouble, 100.0},
	{"BackPlaneDistanceMode", PropEnum, 1},
	{"ViewFrustumFrontPlaneMode", PropEnum, 2},
	{"FrontPlaneDistance", PropDouble, 100.0},
	{"FrontPlaneDistanceMode", PropEnum, 1},
	{"LockMode", PropBool, false},
	{"LockInterestNavigation", PropBool, false},
	{"ForegroundOpacity", PropDouble, 1.0},
	{"DisplaySafeArea", PropBool, false},
	{"DisplaySafeAreaOnRender", PropBool, false},
	{"SafeAreaDisplayStyle", PropEnum, 1},
	{"SafeAreaAspectRatio", PropDouble, 1.3333333333333333},
	{"Use2DMagnifierZoom", PropBool, false},
	{"2D Magnifier Zoom", PropDouble, 100.0},
	{"2D Magnifier X", PropDouble, 50.0},
	{"2D Magnifier Y", PropDouble, 50.0},
	{"ProjectionType", PropEnum, 0},
	{"OrthoZoom", PropDouble, 1.0},
	{"UseRealTimeDOFAndAA", PropBool, false},
	{"UseDepthOfField", PropBool, false},
	{"FocusSource", PropEnum, 0},
	{"FocusAngle", PropDouble, 3.5},
	{"FocusDistance", PropDouble, 200.0},
	{"UseAntialiasing", PropBool, false},
	{"AntialiasingIntensity", PropDouble, 0.77777},
	{"AntialiasingMethod", PropEnum, 0},
	{"UseAccumulationBuffer", PropBool, false},
	{"FrameSamplingCount", PropInteger, 7},
	{"FrameSamplingType", PropEnum, 1},
}

var cameraSwitcherDefaults = []TemplateProp{
	{"Color", PropColorRGB, [3]float64{0.8, 0.8, 0.8}},
	{"Camera Index", PropInteger, 1},
}

var geometryDefaults = []TemplateProp{
	{"Color", PropColorRGB, [3]float64{0.8, 0.8, 0.8}},
	{"BBoxMin", PropVector3D, [3]float64{0, 0, 0}},
	{"BBoxMax", PropVector3D, [3]float64{0, 0, 0}},
	{"Primary Visibility", PropBool, true},
	{"Casts Shadows", PropBool, true},
	{"Receive Shadows", PropBool, true},
}

var materialDefaults = []TemplateProp{
	{"ShadingModel", PropString, "Phong"},
	{"MultiLayer", PropBool, false},
	{"EmissiveColor", PropColorRGB, [3]float64{0, 0, 0}},
	{"EmissiveFactor", PropDouble, 1.0},
	{"AmbientColor", PropColorRGB, [3]float64{0.2, 0.2, 0.2}},
	{"AmbientFactor", PropDouble, 1.0},
	{"DiffuseColor", PropColorRGB, [3]float64{0.8, 0.8, 0.8}},
	{"DiffuseFactor", PropDouble, 1.0},
	{"Bump", PropVector3D, [3]float64{0, 0, 0}},
	{"NormalMap", PropVector3D, [3]float64{0, 0, 0}},
	{"BumpFactor", PropDouble, 1.0},
	{"TransparentColor", PropColorRGB, [3]float64{0, 0, 0}},
	{"TransparencyFactor", PropDouble, 0.0},
	{"DisplacementColor", PropColorRGB, [3]float64{0, 0, 0}},
	{"DisplacementFactor", PropDouble, 1.0},
	{"SpecularColor", PropColorRGB, [3]float64{0.2, 0.2, 0.2}},
	{"SpecularFactor", PropDouble, 1.0},
	{"ShininessExponent", PropDouble, 20.0},
	{"ReflectionColor", PropColorRGB, [3]float64{0, 0, 0}},
	{"ReflectionFactor", PropDouble, 1.0},
}

// TemplateModel builds the Model (FbxNode) template.
func TemplateModel(overrides []TemplateProp, users int) *Template {
	return NewTemplate("Model", "FbxNode", modelDefaults, overrides, users)
}

// TemplateCamera builds the NodeAttribute template for cameras.
func TemplateCamera(overrides []TemplateProp, users int) *Template {
	return NewTemplate("NodeAttribute", "FbxCamera", cameraDefaults, overrides, users)
}

// TemplateCameraSwitcher builds the NodeAttribute template for the
// selector record paired with every camera.
func TemplateCameraSwitcher(overrides []TemplateProp, users int) *Template {
	return NewTemplate("NodeAttribute", "FbxCameraSwitcher", cameraSwitcherDefaults, overrides, users)
}

// TemplateGeometry builds the Geometry (FbxMesh) template.
func TemplateGeometry(overrides []TemplateProp, users int) *Template {
	return NewTemplate("Geometry", "FbxMesh", geometryDefaults, overrides, users)
}

// TemplateMaterial builds the Material (FbxSurfacePhong) template.
func TemplateMaterial(overrides []TemplateProp, users int) *Template {
	return NewTemplate("Material", "FbxSurfacePhong", materialDefaults, overrides, users)
}

// TemplatePose builds the Pose template. Poses carry no defaults.
func TemplatePose(overrides []TemplateProp, users int) *Template {
	return NewTemplate("Pose", "", nil, overrides, users)
}

// TemplateGlobalSettings builds the GlobalSettings template. It is
// deliberately empty so every global property is written explicitly.
func TemplateGlobalSettings(users int) *Template {
	return NewTemplate("GlobalSettings", "", nil, nil, users)
}
