package hierarchy

const sampleHierarchy = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<hierarchy rotation="0">
  <node index="0" text="" resource-id="" class="android.widget.FrameLayout" package="com.app" bounds="[0,0][1080,1920]" clickable="false" enabled="true">
    <node index="0" text="Login" resource-id="com.app:id/login_btn" class="android.widget.Button" package="com.app" bounds="[100,200][300,280]" clickable="true" enabled="true"/>
    <node index="1" text="Sign Up" resource-id="com.app:id/signup_btn" class="android.widget.Button" package="com.app" bounds="[100,300][300,380]" clickable="true" enabled="true"/>
  </node>
  <node index="1" text="" resource-id="com.android.systemui:id/navigation_bar" class="android.widget.FrameLayout" package="com.android.systemui" bounds="[0,1920][1080,2040]" x-custom="kept"/>
</hierarchy>`
